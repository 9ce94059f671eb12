package handlers

import (
	"net/http"

	"futsalbook/internal/middleware"
	"futsalbook/internal/models"

	"github.com/gin-gonic/gin"
)

// ListTransactions - GET /api/transactions
// The session user's booking history, newest first.
func (h *Handlers) ListTransactions(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	transactions, err := h.services.Transactions.History(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]models.TransactionView, len(transactions))
	for i, t := range transactions {
		views[i] = models.NewTransactionView(t)
	}

	c.JSON(http.StatusOK, gin.H{"transactions": views})
}

// GetTransaction - GET /api/transactions/:id
func (h *Handlers) GetTransaction(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	t, err := h.services.Transactions.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewTransactionView(*t)})
}

// CancelTransaction - PATCH /api/transactions/:id/cancel
// A user may cancel their own pending transaction.
func (h *Handlers) CancelTransaction(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	t, err := h.services.Transactions.CancelOwn(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewTransactionView(*t)})
}

// UploadProof - POST /api/transactions/:id/proof (multipart form)
// Attaches the payment-proof image; does not change the status.
func (h *Handlers) UploadProof(c *gin.Context) {
	fileHeader, err := c.FormFile("payment_proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_proof file is required"})
		return
	}

	upload, err := h.readProof(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	sess := middleware.SessionFromContext(c)
	t, err := h.services.Bookings.AttachProof(c.Request.Context(), sess, c.Param("id"), upload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewTransactionView(*t)})
}

// RemoveProof - DELETE /api/transactions/:id/proof
func (h *Handlers) RemoveProof(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	t, err := h.services.Bookings.RemoveProof(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewTransactionView(*t)})
}
