package server_test

import (
	"testing"

	"holiday-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WorkerCount(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"Default", 4, 4},
		{"One", 1, 1},
		{"Zero", 0, 1},
		{"Negative", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Workers: tt.workers}
			assert.Equal(t, tt.want, c.WorkerCount())
		})
	}
}
