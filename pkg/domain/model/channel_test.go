package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

func TestParseChannelSelector(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected model.ChannelSelector
	}{
		{"Public channel ID", "C0123456789", model.ChannelSelector{ID: "C0123456789"}},
		{"Private channel ID", "G0ABCDEF12", model.ChannelSelector{ID: "G0ABCDEF12"}},
		{"Plain name", "projekty", model.ChannelSelector{Name: "projekty"}},
		{"Hash prefixed name", "#projekty", model.ChannelSelector{Name: "projekty"}},
		{"Hash forces name mode", "#C0123456789", model.ChannelSelector{Name: "C0123456789"}},
		{"Lowercase looks like a name", "c0123456789", model.ChannelSelector{Name: "c0123456789"}},
		{"Too short for an ID", "C123", model.ChannelSelector{Name: "C123"}},
		{"Surrounding spaces", "  general ", model.ChannelSelector{Name: "general"}},
		{"Empty", "", model.ChannelSelector{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, model.ParseChannelSelector(tc.input))
		})
	}
}

func TestChannelSelectorString(t *testing.T) {
	gt.Equal(t, "C0123456789", model.ChannelSelector{ID: types.ChannelID("C0123456789")}.String())
	gt.Equal(t, "#general", model.ChannelSelector{Name: "general"}.String())
	gt.True(t, model.ChannelSelector{}.IsEmpty())
}
