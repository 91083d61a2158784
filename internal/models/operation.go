package models

type OperationKind string

const (
	OperationOptimize  OperationKind = "optimize"
	OperationTranslate OperationKind = "translate"
)

// OperationRequest describes one pipeline invocation. It is built at request
// ingress and never mutated.
type OperationRequest struct {
	Operation OperationKind
	Parameter string // style label for optimize, ISO language code for translate
	Filename  string
	Content   []byte
}
