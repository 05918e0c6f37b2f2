package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covquest.dev/pkg/covquest/internal/domain"
	domainmocks "covquest.dev/pkg/covquest/internal/domain/mocks"
	m "covquest.dev/pkg/covquest/internal/model"
)

func TestInspectCmd(t *testing.T) {
	_, err := executeWithMockWorkflow(t, newInspectCmd(), func(w *domainmocks.MockWorkflow) {
		w.EXPECT().Inspect(mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
			return assert.ObjectsAreEqual(
				[]m.Path{"src/main/java/a/Foo.java", "src/main/java/a/Bar.java"},
				args.Paths,
			)
		})).Return(nil).Once()
	}, "inspect", "src/main/java/a/Foo.java", "src/main/java/a/Bar.java")

	require.NoError(t, err)
}

func TestInspectCmd_RequiresPaths(t *testing.T) {
	_, err := executeWithMockWorkflow(t, newInspectCmd(), nil, "inspect")

	require.Error(t, err)
}
