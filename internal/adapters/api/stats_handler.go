package api

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherstats.app/internal/core/report"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// StatsQuery holds the query string of GET /api/stats/:data_type
type StatsQuery struct {
	DateFilter  string `form:"date_filter" binding:"omitempty,date_filter"`
	Hour        string `form:"hour" binding:"omitempty,selected_hour"`
	TempExtreme string `form:"temp_extreme" binding:"omitempty,oneof=max min"`
}

// StatsResponse is a report result plus its human-readable rows
type StatsResponse struct {
	*report.Result
	Lines []string `json:"lines"`
}

var validatorsOnce sync.Once

func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := strings.Split(field.Tag.Get("form"), ",")[0]; name != "" && name != "-" {
				return name
			}
			return field.Name
		})
		_ = v.RegisterValidation("date_filter", func(fl validator.FieldLevel) bool {
			_, err := report.ParseDateFilter(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("selected_hour", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(report.SelectedHourLayout, fl.Field().String())
			return err == nil
		})
	})
}

func (s *HTTPServerAdapter) getStats(c *gin.Context) {
	dataType, err := report.ParseDataType(c.Param("data_type"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	var query StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	dateFilter, err := report.ParseDateFilter(query.DateFilter)
	if err != nil {
		s.handleError(c, err)
		return
	}
	tempExtreme, err := report.ParseTempExtreme(query.TempExtreme)
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.reportUseCase.Run(c.Request.Context(), report.Query{
		DataType:     dataType,
		DateFilter:   dateFilter,
		TempExtreme:  tempExtreme,
		SelectedHour: strings.TrimSpace(query.Hour),
	})
	if err != nil {
		s.logger.Error("Report query failed",
			ports.F("data_type", string(dataType)),
			ports.F("error", err.Error()))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Result: result, Lines: result.Lines()})
}

func bindingError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.NewValidationError("invalid query parameters")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "selected_hour":
			messages = append(messages, fe.Field()+" must look like "+report.SelectedHourLayout)
		case "oneof":
			messages = append(messages, fe.Field()+" must be one of: "+fe.Param())
		default:
			messages = append(messages, "invalid "+fe.Field())
		}
	}
	return errors.NewValidationError(strings.Join(messages, "; "))
}
