package desktop

import (
	"encoding/json"
	"testing"

	"github.com/ItsNotGoodName/webdesk/internal/geom"
	"github.com/ItsNotGoodName/webdesk/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		data string
		want Msg
	}{
		{
			data: `{"type":"viewport","width":800,"height":600,"layer":{"x":0,"y":32,"w":800,"h":568}}`,
			want: Viewport{Width: 800, Height: 600, Layer: geom.Rect{Y: 32, W: 800, H: 568}},
		},
		{
			data: `{"type":"viewport","width":800,"height":600}`,
			want: Viewport{Width: 800, Height: 600, Layer: geom.Rect{W: 800, H: 600}},
		},
		{
			data: `{"type":"pointerdown","x":5,"y":6,"button":2,"window":"about","region":"handle"}`,
			want: PointerDown{Pointer: input.Pointer{X: 5, Y: 6, Button: input.ButtonSecondary}, Window: "about", Region: RegionHandle},
		},
		{data: `{"type":"pointermove","x":1,"y":2}`, want: PointerMove{Pointer: input.Pointer{X: 1, Y: 2}}},
		{data: `{"type":"pointerup","x":1,"y":2}`, want: PointerUp{Pointer: input.Pointer{X: 1, Y: 2}}},
		{data: `{"type":"pointerleave"}`, want: PointerLeave{}},
		{data: `{"type":"keydown","key":"Escape"}`, want: KeyDown{Key: input.KeyEscape}},
		{data: `{"type":"open","key":"about","title":"Hi"}`, want: Open{Key: "about", Title: "Hi"}},
		{data: `{"type":"close","key":"about"}`, want: CloseWindow{Key: "about"}},
		{data: `{"type":"focusin","target":"icon:about"}`, want: FocusIn{Target: "icon:about"}},
	}

	for _, tt := range tests {
		got, err := Decode([]byte(tt.data))
		require.NoError(t, err, tt.data)
		assert.Equal(t, tt.want, got, tt.data)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"type":"dance"}`))
	assert.ErrorIs(t, err, ErrUnknownMessage)

	_, err = Decode([]byte(`{`))
	assert.Error(t, err)
}

func TestFrameJSON(t *testing.T) {
	b, err := json.Marshal(Frame{Type: FrameOps, Ops: []Op{{Op: OpUnmount, Key: "about"}}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"ops","ops":[{"op":"unmount","key":"about","x":0,"y":0}]}`, string(b))
}
