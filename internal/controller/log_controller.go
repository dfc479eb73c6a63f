package controller

import (
	"logfiber-be/internal/dto"
	"logfiber-be/internal/pkg/serverutils"
	"logfiber-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Purge(ctx *fiber.Ctx) error
}

type logController struct {
	ingestService service.IIngestService
	queryService  service.IQueryService
	purgeService  service.IPurgeService
}

func NewLogController(ingestService service.IIngestService, queryService service.IQueryService, purgeService service.IPurgeService) ILogController {
	return &logController{
		ingestService: ingestService,
		queryService:  queryService,
		purgeService:  purgeService,
	}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/log/v1")
	h.Post(":projectSlug", c.Ingest)
	h.Post(":projectSlug/search", c.Search)
	h.Delete(":projectSlug", c.Purge)
}

func (c *logController) Ingest(ctx *fiber.Ctx) error {
	projectSlug := ctx.Params("projectSlug")

	var req dto.IngestLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.Ingest(ctx.Context(), projectSlug, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success ingest log", res))
}

func (c *logController) Search(ctx *fiber.Ctx) error {
	projectSlug := ctx.Params("projectSlug")

	var req dto.SearchLogsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.Search(ctx.Context(), projectSlug, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search logs", res))
}

func (c *logController) Purge(ctx *fiber.Ctx) error {
	projectSlug := ctx.Params("projectSlug")

	var req dto.PurgeLogsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purgeService.Purge(ctx.Context(), projectSlug, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success purge logs", res))
}
