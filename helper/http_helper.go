package helper

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds the helper with a validator and an English
// translator for field-level messages.
func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode ...
// Map store errors onto HTTP status codes. Creation/update failures are
// reported as bad requests; only a missing record is a 404.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorDuplicateEntry":
			statusCode = http.StatusBadRequest
		case "models.ErrorInvalidInput":
			statusCode = http.StatusBadRequest
		case "models.ErrorStorage":
			statusCode = http.StatusBadRequest
		default:
			statusCode = http.StatusBadRequest
		}
	}

	return statusCode
}

// SendError ...
// Send an error response with the status code picked from the error kind
// and the original message under details.
func (u *HTTPHelper) SendError(c *gin.Context, message string, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   message,
		"details": details,
	})
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": message,
	})
}

// SendValidationError ...
// Send validation error response to consumers, translated per field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid input",
		"details": errorResponse,
	})
}

// ValidateStruct ...
// Run a bound payload through the validator; on failure the 400 response is
// sent here and false is returned.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, payload interface{}) bool {
	if err := u.Validate.Struct(payload); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, "Invalid input", err.Error())
		return false
	}

	return true
}

// SendSuccess ...
// Send a plain 200 with the record as the body.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated ...
// Send a 201 with a message plus any identifiers produced by the write.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data gin.H) {
	body := gin.H{"message": message}
	for k, v := range data {
		body[k] = v
	}

	c.JSON(http.StatusCreated, body)
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
