package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/serverutils"
	"github.com/TanaySingh02/Farmwise2.0/internal/service"
)

type ISchemeController interface {
	RegisterRoutes(r fiber.Router)
	Import(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type schemeController struct {
	catalogService service.ICatalogService
}

func NewSchemeController(catalogService service.ICatalogService) ISchemeController {
	return &schemeController{
		catalogService: catalogService,
	}
}

func (c *schemeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scheme/v1")
	h.Get("search", c.Search)
	h.Post("import", c.Import)
	h.Post("reindex", c.Reindex)
}

func (c *schemeController) Import(ctx *fiber.Ctx) error {
	var imports []*dto.SchemeImport
	if err := ctx.BodyParser(&imports); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.catalogService.ImportSchemes(ctx.UserContext(), imports)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import schemes", res))
}

func (c *schemeController) Search(ctx *fiber.Ctx) error {
	req := dto.SchemeSearchRequest{
		Query:     ctx.Query("query"),
		ChunkKind: ctx.Query("chunk_kind"),
		TopK:      ctx.QueryInt("top_k", 0),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.SearchSchemes(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search schemes", res))
}

func (c *schemeController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ReindexAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Reindex queued", res))
}
