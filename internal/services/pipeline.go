package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"cvstudio/cv-ai-backend/internal/config"
	"cvstudio/cv-ai-backend/internal/models"
)

// Capabilities records which optional document facilities were resolved at
// process start. The flags are injected into the pipeline and never change.
type Capabilities struct {
	Extraction bool
	Rendering  bool
}

func ResolveCapabilities(pdfProcessing bool) Capabilities {
	return Capabilities{
		Extraction: pdfProcessing,
		Rendering:  pdfProcessing,
	}
}

func (c Capabilities) PDFProcessing() bool {
	return c.Extraction && c.Rendering
}

type PipelineService interface {
	Process(ctx context.Context, req *models.OperationRequest) (*models.ResultEnvelope, error)
}

type pipelineService struct {
	extractor PDFExtractorService
	renderer  PDFRendererService
	prompts   *PromptBuilder
	moonshot  MoonshotService
	caps      Capabilities
	cfg       *config.Config
}

func NewPipelineService(
	extractor PDFExtractorService,
	renderer PDFRendererService,
	prompts *PromptBuilder,
	moonshot MoonshotService,
	caps Capabilities,
	cfg *config.Config,
) PipelineService {
	return &pipelineService{
		extractor: extractor,
		renderer:  renderer,
		prompts:   prompts,
		moonshot:  moonshot,
		caps:      caps,
		cfg:       cfg,
	}
}

// Process runs one end-to-end operation. Exactly one of the mock and live
// paths executes per request: live when mock mode is off and a credential is
// configured, mock otherwise. A generative failure on the live path degrades
// to the mock path with the mock flag set; extraction and render failures are
// surfaced to the caller.
func (s *pipelineService) Process(ctx context.Context, req *models.OperationRequest) (*models.ResultEnvelope, error) {
	runID := uuid.New()

	if !s.cfg.AIEnabled() {
		log.Printf("⚠️ [%s] Mock mode - returning original file\n", runID)
		return s.mockEnvelope(req), nil
	}

	log.Printf("🤖 [%s] Processing %s (%s) with AI...\n", runID, req.Filename, req.Operation)

	text, err := s.sourceText(req.Content)
	if err != nil {
		return nil, err
	}
	log.Printf("📄 [%s] Extracted %d characters from PDF\n", runID, len(text))

	prompt := s.buildPrompt(req) + text

	aiResponse, err := s.moonshot.GenerateTextWithRetry(ctx, prompt, s.cfg.Moonshot.MaxTokens, s.cfg.Moonshot.RetryMaxAttempts)
	if err != nil {
		log.Printf("❌ [%s] Generative call failed, falling back to mock: %v\n", runID, err)
		return s.mockEnvelope(req), nil
	}
	log.Printf("✅ [%s] AI %s completed\n", runID, req.Operation)

	output := req.Content
	if s.caps.Rendering {
		rendered, err := s.renderer.RenderDocument(aiResponse)
		if err != nil {
			return nil, err
		}
		output = rendered
		log.Printf("📄 [%s] Generated %s PDF\n", runID, req.Operation)
	}

	envelope := s.buildEnvelope(req, output, false)
	envelope.AIResponse = &aiResponse
	return envelope, nil
}

// sourceText extracts the document text, or substitutes the fixed sentinel
// when extraction is unavailable. The sentinel is never empty and never an
// error.
func (s *pipelineService) sourceText(content []byte) (string, error) {
	if !s.caps.Extraction {
		return ExtractionUnavailableText, nil
	}
	return s.extractor.ExtractText(content)
}

func (s *pipelineService) buildPrompt(req *models.OperationRequest) string {
	if req.Operation == models.OperationTranslate {
		return s.prompts.BuildTranslatePrompt(req.Parameter)
	}
	return s.prompts.BuildOptimizePrompt(req.Parameter)
}

func (s *pipelineService) mockEnvelope(req *models.OperationRequest) *models.ResultEnvelope {
	log.Printf("📊 %s\n", mockConfirmation(req))
	return s.buildEnvelope(req, req.Content, true)
}

func mockConfirmation(req *models.OperationRequest) string {
	if req.Operation == models.OperationTranslate {
		return fmt.Sprintf("Mock translation to %s completed", req.Parameter)
	}
	return fmt.Sprintf("Mock optimization completed for %s style", req.Parameter)
}

func (s *pipelineService) buildEnvelope(req *models.OperationRequest, payload []byte, mock bool) *models.ResultEnvelope {
	encoded := base64.StdEncoding.EncodeToString(payload)
	timestamp := time.Now().Unix()
	filePrefix, idPrefix := operationPrefixes(req.Operation)

	info := models.FileInfo{
		Path:           fmt.Sprintf("%s/%d/%s", filePrefix, timestamp, req.Filename),
		DownloadURL:    "data:application/pdf;base64," + encoded,
		SHA:            fmt.Sprintf("%s-%d", idPrefix, timestamp),
		Size:           len(encoded),
		FirestoreDocID: fmt.Sprintf("%s-doc-%d", idPrefix, timestamp),
		AIProcessed:    !mock,
		PDFProcessing:  s.caps.PDFProcessing(),
	}

	if req.Operation == models.OperationTranslate {
		info.Language = req.Parameter
	} else {
		info.Style = req.Parameter
	}

	return &models.ResultEnvelope{
		Success:  true,
		Filename: fmt.Sprintf("%s-%s", filePrefix, req.Filename),
		FileData: encoded,
		FileInfo: info,
		MockMode: mock,
	}
}

func operationPrefixes(op models.OperationKind) (filePrefix, idPrefix string) {
	if op == models.OperationTranslate {
		return "translated", "trans"
	}
	return "optimized", "opt"
}
