package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"buddha-num-conv/internal/conv"
	"buddha-num-conv/internal/form"
	"buddha-num-conv/internal/render"
	"buddha-num-conv/internal/scale"
	"buddha-num-conv/internal/token"
)

// Handler handles HTTP requests for the conversion API
type Handler struct {
	defaultFormat render.Format
}

// NewHandler creates a new API handler
func NewHandler(defaultFormat render.Format) *Handler {
	if defaultFormat == "" {
		defaultFormat = render.FormatText
	}
	return &Handler{defaultFormat: defaultFormat}
}

// Convert handles POST /v1/conversions
func (h *Handler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorResponse(c, http.StatusBadRequest, ErrorCodeInvalidArgument, "invalid request body")
		return
	}

	h.convert(c, &req)
}

// ConvertQuery handles GET /v1/conversions
func (h *Handler) ConvertQuery(c *gin.Context) {
	req := ConvertRequest{
		Coefficient: c.Query("coef"),
		Exponent:    c.Query("exp"),
		Format:      c.Query("format"),
	}
	if number, ok := c.GetQuery("number"); ok {
		req.Number = &number
	}

	opts, err := parseQueryOptions(c)
	if err != nil {
		writeErrorResponse(c, http.StatusBadRequest, ErrorCodeInvalidArgument, err.Error())
		return
	}
	req.Options = opts

	h.convert(c, &req)
}

func (h *Handler) convert(c *gin.Context, req *ConvertRequest) {
	format := h.defaultFormat
	if req.Format != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			statusCode, errResp := MapErrorToHTTP(err)
			c.JSON(statusCode, errResp)
			return
		}
		format = f
	}

	var in form.Input
	if req.Number != nil {
		in = form.PlainNumber(*req.Number)
	} else {
		in = form.Expression(req.Coefficient, req.Exponent)
	}

	res, err := conv.Run(in.Coefficient, in.Exponent, buildOptions(req.Options))
	if err != nil {
		statusCode, errResp := MapErrorToHTTP(err)
		c.JSON(statusCode, errResp)
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Normalized: res.Magnitude.String(),
		Tokens:     buildTokenDTOs(res.Tokens),
		Rendered:   render.Tokens(format, res.Tokens),
		Format:     string(format),
	})
}

// ListScales handles GET /v1/scales
func (h *Handler) ListScales(c *gin.Context) {
	defs := scale.All()
	resp := ListScalesResponse{Scales: make([]ScaleDTO, len(defs))}
	for i, def := range defs {
		resp.Scales[i] = buildScaleDTO(def)
	}
	c.JSON(http.StatusOK, resp)
}

// GetScale handles GET /v1/scales/:ordinal
// The path segment is an ordinal or a scale word (e.g., "無量").
func (h *Handler) GetScale(c *gin.Context) {
	key := c.Param("ordinal")

	var (
		def scale.Definition
		ok  bool
	)
	if ordinal, err := strconv.Atoi(key); err == nil {
		def, ok = scale.Lookup(ordinal)
	} else {
		def, ok = scale.ByName(key)
	}
	if !ok {
		statusCode, errResp := MapErrorToHTTP(fmt.Errorf("%q: %w", key, errScaleNotFound))
		c.JSON(statusCode, errResp)
		return
	}

	c.JSON(http.StatusOK, buildScaleDTO(def))
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func buildOptions(dto *OptionsDTO) conv.Options {
	opts := conv.DefaultOptions()
	if dto == nil {
		return opts
	}
	if dto.Ruby != nil {
		opts.IncludeReadings = *dto.Ruby
	}
	if dto.AllInKanji != nil {
		opts.AllDigitsNamed = *dto.AllInKanji
	}
	if dto.RakushaToComma != nil {
		opts.RakushaAsComma = *dto.RakushaToComma
	}
	if dto.Spacing != nil {
		opts.SpacingAfterScale = *dto.Spacing
	}
	return opts
}

func parseQueryOptions(c *gin.Context) (*OptionsDTO, error) {
	opts := &OptionsDTO{}
	fields := []struct {
		key string
		dst **bool
	}{
		{"ruby", &opts.Ruby},
		{"all_in_kanji", &opts.AllInKanji},
		{"rakusha_to_comma", &opts.RakushaToComma},
		{"spacing", &opts.Spacing},
	}

	for _, f := range fields {
		raw, ok := c.GetQuery(f.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean", f.key)
		}
		*f.dst = &v
	}
	return opts, nil
}

func buildTokenDTOs(tokens []token.Token) []TokenDTO {
	out := make([]TokenDTO, len(tokens))
	for i, t := range tokens {
		out[i] = TokenDTO{Text: t.Text, Reading: t.Reading}
	}
	return out
}

func buildScaleDTO(def scale.Definition) ScaleDTO {
	return ScaleDTO{
		Ordinal: def.Ordinal,
		Name:    def.Name,
		Reading: def.Reading,
		Zeros:   def.Zeros().String(),
	}
}

func writeErrorResponse(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, ErrorResponse{
		Code:    string(code),
		Message: message,
	})
}
