package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/parser"
	"github.com/forhad-fhj/SkillBridge/storage"
	"github.com/forhad-fhj/SkillBridge/utils"
)

const (
	// maxUploadSize caps resume uploads
	maxUploadSize = 10 << 20
	// minDocumentText is the shortest extracted resume text worth analysing
	minDocumentText = 50
	// minSkillText is the shortest plain text accepted by extract-skills
	minSkillText = 10
)

// DocumentParser is the external parser service. *parser.Client satisfies it.
type DocumentParser interface {
	ParseDocument(ctx context.Context, filename, contentType string, data []byte) (*models.ExtractSkillsResponse, error)
	ExtractSkills(ctx context.Context, text string) (*models.ExtractSkillsResponse, error)
}

// PDFSkillExtractor reads skills straight from a PDF. *gemini.Client
// satisfies it; extractors that do are sent PDFs without local text extraction.
type PDFSkillExtractor interface {
	ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) (models.SkillSet, error)
}

// DocumentHandler handles resume parsing and skill extraction
type DocumentHandler struct {
	documents *utils.DocumentExtractor
	skills    extract.SkillExtractor
	parser    DocumentParser
	blobs     storage.BlobStore
	users     storage.UserStore
}

// NewDocumentHandler creates a new document handler. When docParser is non-nil
// uploads and plain-text extraction are forwarded to it instead of being
// handled locally. blobs and users may be nil, which disables resume storage.
func NewDocumentHandler(
	skills extract.SkillExtractor,
	docParser DocumentParser,
	blobs storage.BlobStore,
	users storage.UserStore,
) *DocumentHandler {
	return &DocumentHandler{
		documents: utils.NewDocumentExtractor(),
		skills:    skills,
		parser:    docParser,
		blobs:     blobs,
		users:     users,
	}
}

// ParseDocument extracts skills from an uploaded resume
// @Summary Parse resume document
// @Description Upload a PDF, DOCX or TXT resume and extract categorized skills. With save=true and a valid token the file is also stored.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file (PDF, DOCX, TXT)"
// @Param save query bool false "Store the resume for the authenticated user"
// @Success 200 {object} models.ParseDocumentResponse "Extracted skills"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 502 {object} models.ErrorResponse "Parser service failed"
// @Failure 500 {object} models.ErrorResponse "Extraction failed"
// @Router /parse-document [post]
func (h *DocumentHandler) ParseDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "No file provided", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !h.documents.IsSupportedFormat(header.Filename, contentType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Unsupported file type",
			Code:    http.StatusBadRequest,
			Details: "Only PDF, DOCX and TXT files are supported",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		badRequest(c, "Failed to read file", err)
		return
	}
	if len(data) > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "File too large",
			Code:    http.StatusBadRequest,
			Details: "Maximum upload size is 10MB",
		})
		return
	}

	ctx := c.Request.Context()
	mime := utils.DetectMime(header.Filename, contentType)

	var skills models.SkillSet
	pdfExtractor, readsPDF := h.skills.(PDFSkillExtractor)
	switch {
	case h.parser != nil:
		resp, err := h.parser.ParseDocument(ctx, header.Filename, mime, data)
		if err != nil {
			h.parserFailure(c, err)
			return
		}
		skills = resp.Skills
	case readsPDF && mime == utils.MimePDF:
		log.Printf("[DocumentHandler] Sending %s to the model as PDF", header.Filename)
		skills, err = pdfExtractor.ExtractSkillsFromPDF(ctx, data)
		if err != nil {
			extractionFailure(c, err)
			return
		}
	default:
		text, err := h.documents.ExtractText(mime, data)
		if err != nil {
			log.Printf("[DocumentHandler] Failed to extract text from %s: %v", header.Filename, err)
			badRequest(c, "Could not read document", err)
			return
		}
		if len(strings.TrimSpace(text)) < minDocumentText {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Could not extract sufficient text from document",
				Code:  http.StatusBadRequest,
			})
			return
		}

		skills, err = h.skills.ExtractSkills(ctx, text)
		if err != nil {
			extractionFailure(c, err)
			return
		}
	}
	if skills == nil {
		skills = models.SkillSet{}
	}

	response := models.ParseDocumentResponse{
		Skills:      skills,
		TotalSkills: skills.Count(),
	}
	if c.Query("save") == "true" {
		response.ResumeURL = h.saveResume(c, header.Filename, mime, data)
	}

	log.Printf("[DocumentHandler] Extracted %d skills from %s", response.TotalSkills, header.Filename)
	c.JSON(http.StatusOK, response)
}

// saveResume stores the upload for the authenticated user. Failures are
// logged and leave the URL empty.
func (h *DocumentHandler) saveResume(c *gin.Context, filename, contentType string, data []byte) string {
	claims := auth.GetAuthClaims(c)
	if claims == nil || h.blobs == nil {
		return ""
	}

	ctx := c.Request.Context()
	url, err := h.blobs.UploadResume(ctx, claims.Email, filename, contentType, data)
	if err != nil {
		log.Printf("[DocumentHandler] Failed to upload resume for %s: %v", claims.Email, err)
		return ""
	}
	if h.users != nil {
		if err := h.users.UpdateResumeURL(ctx, claims.Email, url); err != nil {
			log.Printf("[DocumentHandler] Failed to save resume URL for %s: %v", claims.Email, err)
		}
	}
	return url
}

func (h *DocumentHandler) parserFailure(c *gin.Context, err error) {
	var apiErr *parser.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Document rejected",
			Code:    http.StatusBadRequest,
			Details: apiErr.Detail,
		})
		return
	}

	log.Printf("[DocumentHandler] Parser service failed: %v", err)
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "Parser service failed",
		Code:    http.StatusBadGateway,
		Details: err.Error(),
	})
}

// ExtractSkills extracts skills from plain text
// @Summary Extract skills from text
// @Description Extract categorized skills from free text such as a job description. Forwarded to the parser service when one is configured.
// @Failure 502 {object} models.ErrorResponse "Parser service failed"
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.ExtractSkillsRequest true "Text to analyze"
// @Success 200 {object} models.ExtractSkillsResponse "Extracted skills"
// @Failure 400 {object} models.ErrorResponse "Text too short"
// @Failure 500 {object} models.ErrorResponse "Extraction failed"
// @Router /extract-skills [post]
func (h *DocumentHandler) ExtractSkills(c *gin.Context) {
	var req models.ExtractSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if len(strings.TrimSpace(req.Text)) < minSkillText {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Text is too short",
			Code:  http.StatusBadRequest,
		})
		return
	}

	ctx := c.Request.Context()
	if h.parser != nil {
		resp, err := h.parser.ExtractSkills(ctx, req.Text)
		if err != nil {
			h.parserFailure(c, err)
			return
		}
		skills := resp.Skills
		if skills == nil {
			skills = models.SkillSet{}
		}
		c.JSON(http.StatusOK, models.ExtractSkillsResponse{
			Skills:      skills,
			TotalSkills: skills.Count(),
		})
		return
	}

	skills, err := h.skills.ExtractSkills(ctx, req.Text)
	if err != nil {
		extractionFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ExtractSkillsResponse{
		Skills:      skills,
		TotalSkills: skills.Count(),
	})
}

func extractionFailure(c *gin.Context, err error) {
	log.Printf("[DocumentHandler] Skill extraction failed: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Failed to extract skills",
		Code:  http.StatusInternalServerError,
	})
}
