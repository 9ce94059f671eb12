package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"futsalbook/internal/middleware"
	"futsalbook/internal/models"
	"futsalbook/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateDraft - POST /api/bookings/draft
// Captures the slot selection; overwrites any prior unconsumed draft.
func (h *Handlers) CreateDraft(c *gin.Context) {
	var req models.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Silakan pilih waktu booking terlebih dahulu"})
		return
	}

	sess := middleware.SessionFromContext(c)
	draft, err := h.services.Bookings.CreateDraft(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"draft":         draft,
		"price_display": models.FormatIDR(draft.Price),
	})
}

// GetDraft - GET /api/bookings/draft
func (h *Handlers) GetDraft(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if sess.Draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":         sess.Draft,
		"price_display": models.FormatIDR(sess.Draft.Price),
	})
}

// Checkout - POST /api/checkout (multipart form)
// Fields: payment_method (bca|bri|mandiri|ewallet), optional payment_proof
// image. Consumes the draft and creates a pending transaction.
func (h *Handlers) Checkout(c *gin.Context) {
	methodID := c.PostForm("payment_method")
	if methodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Silakan pilih metode pembayaran terlebih dahulu"})
		return
	}

	upload, err := h.proofFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	sess := middleware.SessionFromContext(c)
	t, err := h.services.Bookings.Checkout(c.Request.Context(), sess, methodID, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": models.NewTransactionView(*t)})
}

// proofFromForm reads the optional payment_proof file part. A missing
// file is not an error; size and type limits are enforced by the service.
func (h *Handlers) proofFromForm(c *gin.Context) (*service.ProofUpload, error) {
	fileHeader, err := c.FormFile("payment_proof")
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return h.readProof(fileHeader)
}

func (h *Handlers) readProof(fileHeader *multipart.FileHeader) (*service.ProofUpload, error) {
	upload := &service.ProofUpload{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	// An oversized upload is refused on its declared size; the service
	// rejects it without the body ever being buffered.
	if upload.Size > h.services.Bookings.MaxProofBytes() {
		return upload, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, upload.Size))
	if err != nil {
		return nil, err
	}

	upload.Data = data
	return upload, nil
}
