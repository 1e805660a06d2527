package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
	maxUploadBytes  int64
	logger          *zap.Logger
}

func NewDocumentHandler(documentService *service.DocumentService, maxUploadSizeMB int64, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadSizeMB * 1024 * 1024,
		logger:          logger,
	}
}

// UploadPOD godoc
// @Summary Upload proof of delivery
// @Description Register the POD for a trip; the trip must be in transit with a paid advance. Accepts multipart file upload or JSON metadata.
// @Tags Documents
// @Accept mpfd
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/pod [post]
func (h *DocumentHandler) UploadPOD(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/json" && len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		h.uploadPODFile(w, r, ref)
		return
	}

	var req domain.UploadPODRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.documentService.UploadPOD(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

func (h *DocumentHandler) uploadPODFile(w http.ResponseWriter, r *http.Request, ref string) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	trip, err := h.documentService.UploadPODFile(r.Context(), ref, header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("failed to upload POD file", zap.String("ref", ref), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// UploadDocument godoc
// @Summary Attach a document to a trip
// @Description Register a document descriptor; POD-typed documents route through the POD upload rules
// @Tags Documents
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param document body domain.UploadDocumentRequest true "Document descriptor"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/documents [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.documentService.UploadDocument(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// Download godoc
// @Summary Download a trip document
// @Description Stream a stored document
// @Tags Documents
// @Produce octet-stream
// @Param ref path string true "Trip UUID or order number"
// @Param documentId path string true "Document UUID"
// @Success 200 {file} binary
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/documents/{documentId} [get]
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	documentID, err := uuid.Parse(chi.URLParam(r, "documentId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	reader, doc, err := h.documentService.DownloadDocument(r.Context(), ref, documentID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("failed to stream document", zap.String("ref", ref), zap.Error(err))
	}
}
