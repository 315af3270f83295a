package patch_test

import (
	"testing"

	"github.com/PeymanKh/CRFMS/internal/pkg/patch"
	"github.com/PeymanKh/CRFMS/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "full_time", patch.Coalesce(nil, "full_time"))
	assert.Equal(t, "contract", patch.Coalesce(ptr.To("contract"), "full_time"))
}
