package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/serverutils"
	"github.com/TanaySingh02/Farmwise2.0/internal/service"
)

type IMatchingController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type matchingController struct {
	matchingService service.IMatchingService
}

func NewMatchingController(matchingService service.IMatchingService) IMatchingController {
	return &matchingController{
		matchingService: matchingService,
	}
}

func (c *matchingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matching/v1")
	h.Post(":farmerId/run", c.Run)
	h.Get(":farmerId", c.List)
}

func (c *matchingController) Run(ctx *fiber.Ctx) error {
	farmerId := ctx.Params("farmerId")

	state, err := c.matchingService.Run(ctx.UserContext(), farmerId)
	if err != nil {
		var stageErr *service.StageError
		if errors.As(err, &stageErr) {
			return fiber.NewError(statusForErrorKind(stageErr.Kind), stageErr.Error())
		}
		return err
	}

	res := dto.MatchRunResponse{
		FarmerId: farmerId,
		State:    string(state.Stage),
		Matches:  make([]dto.MatchResultResponse, 0, len(state.Matches)),
	}
	for _, match := range state.Matches {
		res.Matches = append(res.Matches, dto.NewMatchResultResponse(match))
	}

	return ctx.JSON(serverutils.SuccessResponse("Matching run completed", res))
}

func (c *matchingController) List(ctx *fiber.Ctx) error {
	farmerId := ctx.Params("farmerId")

	matches, err := c.matchingService.ListMatches(ctx.UserContext(), farmerId)
	if err != nil {
		return err
	}

	res := make([]dto.MatchResultResponse, 0, len(matches))
	for _, match := range matches {
		res = append(res, dto.NewMatchResultResponse(match))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list matches", res))
}

func statusForErrorKind(kind service.ErrorKind) int {
	switch kind {
	case service.ErrorKindMissingInput, service.ErrorKindValidationFailed:
		return fiber.StatusBadRequest
	case service.ErrorKindDataFetchFailed:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
