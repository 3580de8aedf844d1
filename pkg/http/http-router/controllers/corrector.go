package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	helper "github.com/spellkit-go/spellkit/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexWord = regexp.MustCompile(`^[A-Za-z0-9'-]+$`)
)

type spellAPI struct {
	correctorService CorrectorService
	log              *zap.Logger
}

func New(correctorService CorrectorService, log *zap.Logger) *spellAPI {
	return &spellAPI{
		correctorService: correctorService,
		log:              log,
	}
}

func (api *spellAPI) Routes(group *helper.RouteGroup) {
	group.POST("/correct", api.correct)
	group.POST("/suggest", api.suggest)
	group.POST("/autocomplete", api.autocomplete)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// correctRequest model info
//
//	@Description	request body for spelling correction of free-form text.
type correctRequest struct {
	Text string `json:"text" validate:"required,max=10000"` // text entered by the user, corrected token by token.
}

// correct godoc
// @Summary		correct operation runs spelling correction over free-form text and returns the corrected text plus a map of changed tokens.
// @Description	correct operation runs spelling correction over free-form text and returns the corrected text plus a map of changed tokens.
// @Tags			corrector
// @ID correct
// @Param			body	body	correctRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/correct [post]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) correct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request correctRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		api.validationErrorResponse(w, r, validate, err)
		return
	}

	result, err := api.correctorService.Correct(request.Text)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// suggestRequest model info
//
//	@Description	request body for ranked replacement suggestions of a single word.
type suggestRequest struct {
	Word string `json:"word" validate:"required,max=64"` // the possibly misspelled word.
}

// suggest godoc
// @Summary		suggest operation returns the ranked replacement candidates for a single word.
// @Description	suggest operation returns the ranked replacement candidates for a single word. A word that is already valid vocabulary yields an empty list.
// @Tags			corrector
// @ID suggest
// @Param			body	body	suggestRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/suggest [post]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request suggestRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	matched := regexWord.MatchString(request.Word)

	if err := validate.Struct(request); err != nil {
		api.validationErrorResponse(w, r, validate, err)
		return
	} else if !matched {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: word must be alphanumeric, apostrophe, or hyphen"))
		return
	}

	suggestions, err := api.correctorService.Suggest(request.Word)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": suggestions}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// autocompleteRequest model info
//
//	@Description	request body for prefix completion over the trained vocabulary.
type autocompleteRequest struct {
	Prefix string `json:"prefix" validate:"required,max=64"` // completion prefix.
	TopK   int    `json:"top_k" validate:"min=0,max=100"`    // number of completions to return; 0 uses the default.
}

// autocomplete godoc
// @Summary		autocomplete operation returns the most frequent vocabulary words starting with the given prefix.
// @Description	autocomplete operation returns the most frequent vocabulary words starting with the given prefix.
// @Tags			corrector
// @ID autocomplete
// @Param			body	body	autocompleteRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocomplete [post]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *spellAPI) autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request autocompleteRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	matched := regexWord.MatchString(request.Prefix)

	if err := validate.Struct(request); err != nil {
		api.validationErrorResponse(w, r, validate, err)
		return
	} else if !matched {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: prefix must be alphanumeric, apostrophe, or hyphen"))
		return
	}

	suggestions, err := api.correctorService.Autocomplete(request.Prefix, request.TopK)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": suggestions}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *spellAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request,
	validate *validator.Validate, err error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
