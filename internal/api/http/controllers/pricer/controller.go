package pricer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

// Controller — маршруты оценки: price.
type Controller struct {
	uc     ports.IPricerUseCase
	parser ports.IRawParser
	log    *slog.Logger
}

// New создаёт контроллер оценки.
func New(uc ports.IPricerUseCase, parser ports.IRawParser, log *slog.Logger) *Controller {
	return &Controller{uc: uc, parser: parser, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/price", c.price)
}

// @Summary Оценить корзину или вернуть ответ по хэшу
// @Description Принимает {hash} или {location, items|raw}; ответ — списки accepted/rejected, сумма и content-хэш для повторного запроса.
// @Tags pricer
// @Accept json
// @Produce json
// @Param request body PriceRequest true "Параметры оценки"
// @Success 200 {object} domain.Response "Итог оценки"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 500 {object} ErrorResponse "Сбой апстрима или хранилища"
// @Router /api/v1/price [post]
func (c *Controller) price(ctx *gin.Context) {
	var req PriceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("price bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("price validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if req.Hash != "" {
		resp, err := c.uc.PriceByHash(ctx.Request.Context(), req.Hash)
		if err != nil {
			c.log.Error("price by hash failed", "hash", req.Hash, "error", err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
		return
	}

	items, ok := c.basketItems(ctx, &req)
	if !ok {
		return
	}

	resp, err := c.uc.PriceBasket(ctx.Request.Context(), req.Location, items)
	if err != nil {
		c.log.Error("price basket failed", "location", req.Location, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// basketItems собирает позиции корзины: из тела запроса или через внешний
// парсер свободного текста. При ошибке сам пишет ответ и возвращает ok == false.
func (c *Controller) basketItems(ctx *gin.Context, req *PriceRequest) ([]domain.Item, bool) {
	if req.Raw == "" {
		items := make([]domain.Item, len(req.Items))
		for i, it := range req.Items {
			items[i] = domain.Item{Name: it.Name, Quantity: it.Quantity}
		}
		return items, true
	}

	items, err := c.parser.Parse(ctx.Request.Context(), req.Raw)
	if err != nil {
		if errors.Is(err, domain.ErrRawInput) {
			c.log.Warn("raw input rejected", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return nil, false
		}
		c.log.Error("raw parse failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return nil, false
	}
	return items, true
}
