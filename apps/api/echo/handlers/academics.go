package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/kitivo/apps/api/echo/helpers"
	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/notification"
)

type academicsApi struct {
	service    *academics.Service
	dispatcher *notification.Dispatcher
}

func RegisterAcademicsAPI(g *echo.Group, auth, gate echo.MiddlewareFunc, svc *academics.Service, dispatcher *notification.Dispatcher) {
	api := academicsApi{service: svc, dispatcher: dispatcher}

	ag := g.Group("/academics", auth, gate)

	ag.GET("/catalog", api.catalog)
	ag.GET("/catalog/codes", api.courseCodes)

	cg := ag.Group("/catalog/courses", helpers.AdminOrPresidentMiddleware())
	cg.POST("", api.addCourse)
	cg.PUT("/:id", api.updateCourse)
	cg.DELETE("/:id", api.removeCourse)

	ag.GET("/plans", api.userPlans)
	ag.PUT("/plans", api.upsertPlan)

	ag.GET("/gpa", api.gpaEntries)
	ag.POST("/gpa", api.addGpaEntry)
	ag.DELETE("/gpa/:id", api.deleteGpaEntry)
	ag.GET("/gpa/semester/:semester", api.semesterGPA)
	ag.GET("/gpa/cumulative", api.cumulativeGPA)

	ag.GET("/grades", api.customGrades)
	ag.POST("/grades", api.addCustomGrade)
	ag.DELETE("/grades/:id", api.deleteCustomGrade)
	ag.GET("/grades/average/:code", api.courseAverage)

	ag.GET("/assignments", api.assignments)
	ag.POST("/assignments", api.createAssignment, helpers.AdminOrPresidentMiddleware())
	ag.DELETE("/assignments/:id", api.deleteAssignment, helpers.AdminOrPresidentMiddleware())

	ag.GET("/resources", api.resources)
	ag.POST("/resources", api.createResource, helpers.AdminOrPresidentMiddleware())
	ag.POST("/resources/upload", api.uploadResource, helpers.AdminOrPresidentMiddleware())
	ag.DELETE("/resources/:id", api.deleteResource, helpers.AdminOrPresidentMiddleware())

	ag.GET("/flashcards", api.flashcardSets)
	ag.POST("/flashcards", api.createFlashcardSet)
	ag.PUT("/flashcards/:id", api.updateFlashcardSet)
	ag.DELETE("/flashcards/:id", api.deleteFlashcardSet)
}

type (
	PlanRequest struct {
		Semester string   `json:"semester"`
		Codes    []string `json:"codes"`
	}
	FlashcardSetRequest struct {
		Title string                `json:"title"`
		Cards []academics.Flashcard `json:"cards"`
	}
	GpaResponse struct {
		Gpa string `json:"gpa"`
	}
	AverageResponse struct {
		Average string `json:"average"`
	}
)

func (api *academicsApi) catalog(ctx echo.Context) error {
	cat, err := api.service.Catalog()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (api *academicsApi) courseCodes(ctx echo.Context) error {
	codes, err := api.service.CourseCodes()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, codes)
}

func (api *academicsApi) addCourse(ctx echo.Context) error {
	data := new(academics.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	course, err := api.service.AddCourse(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *academicsApi) updateCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	data := new(academics.NewCourse)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	course, err := api.service.UpdateCourse(id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *academicsApi) removeCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.RemoveCourse(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicsApi) userPlans(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	plans, err := api.service.UserPlans(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plans)
}

func (api *academicsApi) upsertPlan(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(PlanRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	plan, err := api.service.UpsertPlan(claims.UserID(), data.Semester, data.Codes)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plan)
}

func (api *academicsApi) gpaEntries(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	entries, err := api.service.UserGpaEntries(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *academicsApi) addGpaEntry(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(academics.NewGpaEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	entry, err := api.service.AddGpaEntry(claims.UserID(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *academicsApi) deleteGpaEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteGpaEntry(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicsApi) semesterGPA(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	gpa, err := api.service.SemesterGPA(claims.UserID(), ctx.Param("semester"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, GpaResponse{Gpa: gpa})
}

func (api *academicsApi) cumulativeGPA(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	gpa, err := api.service.CumulativeGPA(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, GpaResponse{Gpa: gpa})
}

func (api *academicsApi) customGrades(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	grades, err := api.service.UserCustomGrades(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *academicsApi) addCustomGrade(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(academics.NewCustomGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	grade, err := api.service.AddCustomGrade(claims.UserID(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, grade)
}

func (api *academicsApi) deleteCustomGrade(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteCustomGrade(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicsApi) courseAverage(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	avg, err := api.service.CourseAverage(claims.UserID(), ctx.Param("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AverageResponse{Average: avg})
}

func (api *academicsApi) assignments(ctx echo.Context) error {
	asgs, err := api.service.Assignments()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *academicsApi) createAssignment(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(academics.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	asg, intents, err := api.service.CreateAssignment(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *academicsApi) deleteAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteAssignment(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicsApi) resources(ctx echo.Context) error {
	res, err := api.service.Resources()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *academicsApi) createResource(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(academics.NewResource)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	res, intents, err := api.service.CreateResource(claims.UserID(), *data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, res)
}

// uploadResource is the multipart variant of createResource: the file is
// encoded to base64 off the request goroutine and stored inline.
func (api *academicsApi) uploadResource(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	fh, err := ctx.FormFile("file")
	if err != nil {
		return err
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	enc := <-core.EncodeFile(f)
	if enc.Err != nil {
		return enc.Err
	}

	data := academics.NewResource{
		Code:     ctx.FormValue("code"),
		Title:    ctx.FormValue("title"),
		FileName: fh.Filename,
		Content:  enc.Content,
	}
	res, intents, err := api.service.CreateResource(claims.UserID(), data)
	if err != nil {
		return err
	}
	if _, err = api.dispatcher.Dispatch(intents...); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *academicsApi) deleteResource(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteResource(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicsApi) flashcardSets(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	sets, err := api.service.UserFlashcardSets(claims.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sets)
}

func (api *academicsApi) createFlashcardSet(ctx echo.Context) error {
	claims := helpers.GetContextClaims(ctx)
	data := new(FlashcardSetRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	set, err := api.service.CreateFlashcardSet(claims.UserID(), data.Title, data.Cards)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, set)
}

func (api *academicsApi) updateFlashcardSet(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	data := new(FlashcardSetRequest)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	set, err := api.service.UpdateFlashcardSet(id, data.Title, data.Cards)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, set)
}

func (api *academicsApi) deleteFlashcardSet(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err = api.service.DeleteFlashcardSet(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// pathID parses the ":id" path param; a non-numeric value is a 404.
func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, helpers.ErrHttpNotFound
	}
	return id, nil
}
