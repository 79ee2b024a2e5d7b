package api

import (
	"net/http"
	"strconv"

	reqdto "coupon-processor/internal/handler/dto/request"
	resdto "coupon-processor/internal/handler/dto/response"
	"coupon-processor/internal/handler/httperr"
	"coupon-processor/internal/usecase/commands"
	"coupon-processor/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Create coupon
// @Description Create a new coupon. The code is normalized to its letters and digits.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Header 201 {string} Location "/coupon/{id}"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /coupon [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingErrorMessage(err, req))
		return
	}
	if err := req.CheckStorable(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	rm, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithCouponError(c, err)
		return
	}

	res, err := resdto.FromCouponRM(rm)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.Header("Location", "/coupon/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

// @Summary Get coupon
// @Description Get a coupon by ID. Deleted coupons are still returned.
// @Tags coupons
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /coupon/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}

	rm, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithCouponError(c, err)
		return
	}

	res, err := resdto.FromCouponRM(rm)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete coupon
// @Description Soft delete a coupon. A coupon can be deleted only once.
// @Tags coupons
// @Param id path int true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /coupon/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithCouponError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseCouponID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return 0, false
	}
	return id, true
}
