package mocks

import (
	"testing"

	"github.com/golang/mock/gomock"
)

func TestMockHasherRecordsExpectedCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockHasher(ctrl)
	m.EXPECT().Hash([]byte("http://example.com/")).Return(uint64(42))

	if got := m.Hash([]byte("http://example.com/")); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
