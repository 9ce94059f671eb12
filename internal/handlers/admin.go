package handlers

import (
	"net/http"

	"futsalbook/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard - GET /api/admin/dashboard
func (h *Handlers) Dashboard(c *gin.Context) {
	stats, err := h.services.Dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":                 stats,
		"total_revenue_display": models.FormatIDR(stats.TotalRevenue),
	})
}

// AdminListTransactions - GET /api/admin/transactions?search=&status=
// All transactions joined with their owners; search matches transaction
// id, customer name or email as a case-insensitive substring.
func (h *Handlers) AdminListTransactions(c *gin.Context) {
	search := c.Query("search")
	status := models.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	transactions, err := h.services.Transactions.ListAdmin(c.Request.Context(), search, status)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]models.AdminTransactionView, len(transactions))
	for i, t := range transactions {
		views[i] = models.NewAdminTransactionView(t)
	}

	c.JSON(http.StatusOK, gin.H{"transactions": views})
}

// AdminGetTransaction - GET /api/admin/transactions/:id
// Joined with the customer name/email for the detail view.
func (h *Handlers) AdminGetTransaction(c *gin.Context) {
	t, err := h.services.Transactions.GetAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewAdminTransactionView(*t)})
}

// UpdateTransactionStatus - PATCH /api/admin/transactions/:id/status
// Applies a transition under the policy: pending may move to any terminal
// status, terminal states are immutable, same-value is a no-op.
func (h *Handlers) UpdateTransactionStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	t, err := h.services.Transactions.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": models.NewTransactionView(*t)})
}
