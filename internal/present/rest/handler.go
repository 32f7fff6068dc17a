package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/tapi-calorie/tapi/internal/config"
	"github.com/tapi-calorie/tapi/internal/handle"
	"github.com/tapi-calorie/tapi/internal/schema"
	"github.com/tapi-calorie/tapi/internal/service"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

// Namespace is the prefix of every custom link relation.
const Namespace = "cameta"

type Handler struct {
	config      config.Config
	validator   *schema.Validator
	person      *usecase.PersonUsecase
	meal        *usecase.MealUsecase
	portion     *usecase.PortionUsecase
	mealPortion *usecase.MealPortionUsecase
	mealRecord  *usecase.MealRecordUsecase
	signal      *service.SignalService

	mealPortionCodec handle.MealPortionCodec
	mealRecordCodec  handle.MealRecordCodec
}

func NewHandler(
	config config.Config,
	validator *schema.Validator,
	person *usecase.PersonUsecase,
	meal *usecase.MealUsecase,
	portion *usecase.PortionUsecase,
	mealPortion *usecase.MealPortionUsecase,
	mealRecord *usecase.MealRecordUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		config:      config,
		validator:   validator,
		person:      person,
		meal:        meal,
		portion:     portion,
		mealPortion: mealPortion,
		mealRecord:  mealRecord,
		signal:      signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group(apiPrefix)

	api.GET("/", h.handleEntryPoint)
	api.GET("/link-relations/", h.handleLinkRelations)
	api.GET("/profiles/", h.handleProfiles)
	api.GET("/profiles/:profile/", h.handleProfiles)

	api.GET("/persons/", h.handlePersonList)
	api.POST("/persons/", h.handlePersonCreate)
	api.GET("/persons/:person/", h.handlePersonGet)
	api.DELETE("/persons/:person/", h.handlePersonDelete)
	api.GET("/persons/:person/mealrecords/", h.handlePersonMealRecords)

	api.GET("/meals/", h.handleMealList)
	api.POST("/meals/", h.handleMealCreate)
	api.GET("/meals/:meal/", h.handleMealGet)
	api.PUT("/meals/:meal/", h.handleMealUpdate)
	api.DELETE("/meals/:meal/", h.handleMealDelete)

	api.GET("/portions/", h.handlePortionList)
	api.POST("/portions/", h.handlePortionCreate)
	api.GET("/portions/:portion/", h.handlePortionGet)
	api.PUT("/portions/:portion/", h.handlePortionUpdate)
	api.DELETE("/portions/:portion/", h.handlePortionDelete)

	api.GET("/meals/:meal/mealportions/", h.handleMealPortionList)
	api.POST("/meals/:meal/mealportions/", h.handleMealPortionCreate)
	api.GET("/meals/:meal/mealportions/:handle/", h.handleMealPortionGet)
	api.PUT("/meals/:meal/mealportions/:handle/", h.handleMealPortionUpdate)
	api.DELETE("/meals/:meal/mealportions/:handle/", h.handleMealPortionDelete)

	api.GET("/mealrecords/", h.handleMealRecordList)
	api.POST("/mealrecords/", h.handleMealRecordCreate)
	api.GET("/meals/:meal/mealrecords/:handle/", h.handleMealRecordGet)
	api.PUT("/meals/:meal/mealrecords/:handle/", h.handleMealRecordUpdate)
	api.DELETE("/meals/:meal/mealrecords/:handle/", h.handleMealRecordDelete)

	if h.signal != nil {
		api.GET("/realtime", h.handleRealtime)
	}
}
