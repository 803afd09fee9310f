package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/control"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/position"
	"github.com/yllada/exforms/service"
)

func loaded(t *testing.T, opts Options) *control.Form {
	t.Helper()
	f := NewForm(opts)
	f.Registrar = service.NewRegistrar()
	f.Load()
	return f
}

func TestDemoRegistersNestedInputs(t *testing.T) {
	f := loaded(t, Options{})

	for _, name := range []string{"nameBox", "qtyBox", "expressRadio", "notesBox", "giftBox", "billingBox", "okButton"} {
		w := control.Find(f, name)
		require.NotNil(t, w, name)
		_, ok := f.Registrar.FocusService(w.Handle())
		assert.True(t, ok, name)
	}
}

func TestDemoCaptionFollowsFocus(t *testing.T) {
	f := loaded(t, Options{})
	name := control.Find(f, "nameBox").(*control.TextBox)
	label := control.Find(f, "nameLabel").(*control.Label)

	f.Activate(name)
	assert.Equal(t, paint.Highlight, label.BackColor())

	f.ProcessTabKey(true)
	assert.Equal(t, paint.Transparent, label.BackColor())
}

func TestDemoInternalBoxKeepsColors(t *testing.T) {
	f := loaded(t, Options{})
	internal := control.Find(f, "internalBox").(*control.TextBox)
	before := internal.BackColor()

	f.Activate(internal)
	assert.Equal(t, before, internal.BackColor())
}

func TestDemoClearAndOK(t *testing.T) {
	store := position.NewFileStore(t.TempDir())
	f := loaded(t, Options{Positions: store})

	name := control.Find(f, "nameBox").(*control.TextBox)
	name.SetText("Ann")
	control.Find(f, "clearButton").(*control.Button).PerformClick()
	assert.Empty(t, name.Text())

	f.Move(30, 40)
	control.Find(f, "okButton").(*control.Button).PerformClick()
	require.True(t, f.Closed())

	rec, err := store.Load(FormName)
	require.NoError(t, err)
	assert.Equal(t, position.Record{Left: 30, Top: 40}, rec)
}
