package controller

import (
	"logfiber-be/internal/apperror"
	"logfiber-be/internal/dto"
	"logfiber-be/internal/pkg/serverutils"
	"logfiber-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	CreateAlarmRule(ctx *fiber.Ctx) error
	ListAlarmRules(ctx *fiber.Ctx) error
	DeleteAlarmRule(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) IProjectController {
	return &projectController{
		projectService: projectService,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/project/v1")
	h.Post("", c.Create)
	h.Get(":projectSlug", c.Show)
	h.Post(":projectSlug/alarm", c.CreateAlarmRule)
	h.Get(":projectSlug/alarm", c.ListAlarmRules)
	h.Delete(":projectSlug/alarm/:id", c.DeleteAlarmRule)
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create project", res))
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	res, err := c.projectService.Show(ctx.Context(), ctx.Params("projectSlug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get project", res))
}

func (c *projectController) CreateAlarmRule(ctx *fiber.Ctx) error {
	var req dto.CreateAlarmRuleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.CreateAlarmRule(ctx.Context(), ctx.Params("projectSlug"), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create alarm rule", res))
}

func (c *projectController) ListAlarmRules(ctx *fiber.Ctx) error {
	res, err := c.projectService.ListAlarmRules(ctx.Context(), ctx.Params("projectSlug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get alarm rules", res))
}

func (c *projectController) DeleteAlarmRule(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Inputf("invalid alarm rule id")
	}

	if err := c.projectService.DeleteAlarmRule(ctx.Context(), ctx.Params("projectSlug"), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete alarm rule", nil))
}
