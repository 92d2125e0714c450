package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type oneProc struct{}

func (oneProc) Quit() {}

type twoProcs struct{}

func (*twoProcs) Reload()  {}
func (*twoProcs) Quit()    {}
func (*twoProcs) private() {}

func TestProcedureNames(t *testing.T) {
	assert.Equal(t, []string{"quit"}, ProcedureNames(oneProc{}))
	assert.Equal(t, []string{"quit", "reload"}, ProcedureNames(&twoProcs{}))
	assert.Empty(t, ProcedureNames(struct{}{}))
	assert.Nil(t, ProcedureNames(nil))
}

func TestMenuEventHandlerFunc(t *testing.T) {
	var got MenuEvent
	h := MenuEventHandlerFunc(func(ev MenuEvent) error {
		got = ev
		return nil
	})

	assert.NoError(t, h.OnMenuEvent(MenuEvent{ID: "reload"}))
	assert.Equal(t, "reload", got.ID)
}
