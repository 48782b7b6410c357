package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"trade-query-go/trade"
)

// ParamError reports a query parameter that could not be coerced.
type ParamError struct {
	Name   string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Name, e.Reason, e.Value)
}

// Accepted timestamp layouts. Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseQuery maps /trades parameters onto a trade.Query. Empty values are absent.
func parseQuery(c *gin.Context) (trade.Query, error) {
	q := trade.Query{
		Search:     lastQuery(c, "search"),
		AssetClass: lastQuery(c, "assetClass"),
		TradeType:  lastQuery(c, "tradeType"),
	}

	var err error
	if q.MinPrice, err = floatParam(c, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = floatParam(c, "maxPrice"); err != nil {
		return q, err
	}
	if q.Start, err = timeParam(c, "start"); err != nil {
		return q, err
	}
	if q.End, err = timeParam(c, "end"); err != nil {
		return q, err
	}
	return q, nil
}

// lastQuery returns the last value of a repeated parameter.
func lastQuery(c *gin.Context, name string) string {
	values := c.QueryArray(name)
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func floatParam(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(lastQuery(c, name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &ParamError{Name: name, Value: raw, Reason: "value is not a valid number"}
	}
	return &v, nil
}

func timeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(lastQuery(c, name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, &ParamError{Name: name, Value: raw, Reason: "value is not a valid datetime"}
}
