package strategy

import (
	"testing"

	"github.com/straddleshift/configapi/pkg/timegrid"
	"github.com/stretchr/testify/assert"
)

func TestPreBool(t *testing.T) {
	assert.False(t, preBool(nil, "start", false))
	assert.True(t, preBool(nil, "start", true))

	doc := map[string]interface{}{
		"flag_bool":   true,
		"flag_int":    int64(1),
		"flag_float":  float64(0),
		"flag_string": "true",
		"flag_junk":   "not-a-bool",
		"flag_nil":    nil,
	}
	assert.True(t, preBool(doc, "flag_bool", false))
	assert.True(t, preBool(doc, "flag_int", false))
	assert.False(t, preBool(doc, "flag_float", true))
	assert.True(t, preBool(doc, "flag_string", false))
	assert.False(t, preBool(doc, "flag_junk", false))
	assert.True(t, preBool(doc, "flag_nil", true))
	assert.False(t, preBool(doc, "missing", false))
}

func TestPreInt(t *testing.T) {
	assert.Equal(t, 7, preInt(nil, "otm_points", 7))

	doc := map[string]interface{}{
		"n_int":    42,
		"n_int64":  int64(50),
		"n_float":  float64(20),
		"n_string": "10",
		"n_bytes":  []byte("15"),
		"n_junk":   "ten",
		"n_nil":    nil,
	}
	assert.Equal(t, 42, preInt(doc, "n_int", 0))
	assert.Equal(t, 50, preInt(doc, "n_int64", 0))
	assert.Equal(t, 20, preInt(doc, "n_float", 0))
	assert.Equal(t, 10, preInt(doc, "n_string", 0))
	assert.Equal(t, 15, preInt(doc, "n_bytes", 0))
	assert.Equal(t, 3, preInt(doc, "n_junk", 3))
	assert.Equal(t, 3, preInt(doc, "n_nil", 3))
	assert.Equal(t, 1, preInt(doc, "missing", 1))
}

func TestPreStr(t *testing.T) {
	assert.Equal(t, "NIFTY", preStr(nil, "symbol", "NIFTY"))

	doc := map[string]interface{}{
		"s_string": "BANKNIFTY",
		"s_bytes":  []byte("FINNIFTY"),
		"s_int":    int64(99),
		"s_nil":    nil,
	}
	assert.Equal(t, "BANKNIFTY", preStr(doc, "s_string", ""))
	assert.Equal(t, "FINNIFTY", preStr(doc, "s_bytes", ""))
	assert.Equal(t, "99", preStr(doc, "s_int", ""))
	assert.Equal(t, "d", preStr(doc, "s_nil", "d"))
	assert.Equal(t, "", preStr(doc, "missing", ""))
}

func TestPreTime(t *testing.T) {
	assert.Equal(t, DefaultStart, preTime(nil, "start_time", DefaultStart, Grid))

	doc := map[string]interface{}{
		"t_valid":      "10:30:00",
		"t_below":      "07:00:00",
		"t_above":      "18:45:00",
		"t_junk":       "noon",
		"t_offgrid":    "10:30:20",
		"t_no_seconds": "11:05",
	}
	assert.Equal(t, timegrid.New(10, 30, 0), preTime(doc, "t_valid", DefaultStart, Grid))
	// Out-of-range stored times clamp silently into the window
	assert.Equal(t, MinTime, preTime(doc, "t_below", DefaultEnd, Grid))
	assert.Equal(t, MaxTime, preTime(doc, "t_above", DefaultStart, Grid))
	assert.Equal(t, DefaultStart, preTime(doc, "t_junk", DefaultStart, Grid))
	// Off-grid values snap to the nearest minute
	assert.Equal(t, timegrid.New(10, 30, 0), preTime(doc, "t_offgrid", DefaultStart, Grid))
	assert.Equal(t, timegrid.New(11, 5, 0), preTime(doc, "t_no_seconds", DefaultStart, Grid))
	assert.Equal(t, DefaultEnd, preTime(doc, "missing", DefaultEnd, Grid))
}
