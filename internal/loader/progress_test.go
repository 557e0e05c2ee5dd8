package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handiism/assetbatch/internal/model"
)

func TestLedger_Fraction(t *testing.T) {
	a := model.ItemKey{Bundle: "resources", Path: "a"}
	b := model.ItemKey{Bundle: "resources", Path: "b"}

	dl := newLedger(6, nil)
	assert.Equal(t, 0.0, dl.fraction())

	dl.record(a, 2)
	assert.InDelta(t, 2.0/6.0, dl.fraction(), 1e-9)

	dl.record(b, 3)
	dl.record(a, 3)
	assert.InDelta(t, 1.0, dl.fraction(), 1e-9)
}

func TestLedger_NeverRegresses(t *testing.T) {
	key := model.ItemKey{Bundle: "resources", Path: "a"}
	dl := newLedger(4, nil)

	dl.record(key, 3)
	dl.record(key, 1) // a late partial report arrives after the final one
	assert.InDelta(t, 3.0/4.0, dl.fraction(), 1e-9)
}

func TestLedger_ZeroTotal(t *testing.T) {
	assert.Equal(t, 1.0, newLedger(0, nil).fraction())
	assert.Equal(t, 1.0, newLedger(-1, nil).fraction())
}

func TestLedger_ClampsOvercount(t *testing.T) {
	key := model.ItemKey{Bundle: "resources", Path: "a"}
	dl := newLedger(2, nil)
	dl.record(key, 5)
	assert.Equal(t, 1.0, dl.fraction())
}

func TestLedger_PublishWithoutCallback(t *testing.T) {
	dl := newLedger(2, nil)
	dl.publish() // must not panic

	var got float64
	dl = newLedger(2, func(f float64) { got = f })
	dl.record(model.ItemKey{Bundle: "resources", Path: "a"}, 1)
	dl.publish()
	assert.InDelta(t, 0.5, got, 1e-9)
}
