package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainBilling "github.com/FitClubSystems/gym-manager/internal/domain/billing"
	"github.com/FitClubSystems/gym-manager/internal/dto"
	"github.com/FitClubSystems/gym-manager/internal/httperr"
	"github.com/FitClubSystems/gym-manager/internal/httpresp"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/models"
	ucBilling "github.com/FitClubSystems/gym-manager/internal/usecase/billing"
)

type BillingHandler struct {
	repo domainBilling.Repository

	createBill *ucBilling.CreateBill
	addItem    *ucBilling.AddItem
	markPaid   *ucBilling.MarkPaid
}

func NewBillingHandler(
	repo domainBilling.Repository,
	createBill *ucBilling.CreateBill,
	addItem *ucBilling.AddItem,
	markPaid *ucBilling.MarkPaid,
) *BillingHandler {
	return &BillingHandler{
		repo:       repo,
		createBill: createBill,
		addItem:    addItem,
		markPaid:   markPaid,
	}
}

func (h *BillingHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}
	httpresp.List(c, services)
}

type CreateBillRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Items    []struct {
		ServiceID uint `json:"service_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	} `json:"items"`
}

func (h *BillingHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid bill payload")
		return
	}

	in := ucBilling.CreateBillInput{
		AdminID:  adminID,
		MemberID: req.MemberID,
		Date:     req.Date,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, ucBilling.BillItemInput{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
		})
	}

	bill, err := h.createBill.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, billDTO(bill, ""))
}

type AddItemRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

func (h *BillingHandler) AddItem(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	billID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid bill id")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid item payload")
		return
	}

	item, err := h.addItem.Execute(
		c.Request.Context(), adminID, uint(billID), req.ServiceID, req.Quantity,
	)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, item)
}

func (h *BillingHandler) MarkPaid(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	billID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid bill id")
		return
	}

	bill, err := h.markPaid.Execute(c.Request.Context(), adminID, uint(billID))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, billDTO(bill, ""))
}

func (h *BillingHandler) ListUnpaid(c *gin.Context) {
	bills, err := h.repo.ListUnpaid(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	out := make([]dto.BillDTO, 0, len(bills))
	for i := range bills {
		out = append(out, billDTO(&bills[i], bills[i].Member.FullName()))
	}

	httpresp.List(c, out)
}

// MyBills lets a member see their own billing history.
func (h *BillingHandler) MyBills(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)

	bills, err := h.repo.ListForMember(c.Request.Context(), memberID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	out := make([]dto.BillDTO, 0, len(bills))
	for i := range bills {
		out = append(out, billDTO(&bills[i], ""))
	}

	httpresp.List(c, out)
}

func billDTO(bill *models.Bill, memberName string) dto.BillDTO {
	out := dto.BillDTO{
		ID:        bill.ID,
		Reference: bill.Reference,
		MemberID:  bill.MemberID,
		Member:    memberName,
		Date:      bill.Date,
		Paid:      bill.Paid,
		Total:     domainBilling.Total(bill.Items),
	}
	for _, it := range bill.Items {
		out.Items = append(out.Items, dto.BillItemDTO{
			ID:       it.ID,
			Service:  it.Service.Name,
			Price:    it.Service.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}
