package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covquest.dev/pkg/covquest/internal/controller"
	"covquest.dev/pkg/covquest/internal/domain"
	domainmocks "covquest.dev/pkg/covquest/internal/domain/mocks"
	m "covquest.dev/pkg/covquest/internal/model"
)

func TestDoctorCmd(t *testing.T) {
	_, err := executeWithMockWorkflow(t, newDoctorCmd(), func(w *domainmocks.MockWorkflow) {
		w.EXPECT().Doctor(mock.Anything, mock.MatchedBy(func(args domain.DoctorArgs) bool {
			return args.Workspace == m.Path("/srv/shop") &&
				args.Settings.ReportRoot == m.Path("/srv/reports") &&
				args.Format == controller.FormatYAML
		})).Return(nil).Once()
	}, "doctor", "--workspace", "/srv/shop", "-r", "/srv/reports", "-f", "yaml")

	require.NoError(t, err)
}

func TestDoctorCmd_Failure(t *testing.T) {
	_, err := executeWithMockWorkflow(t, newDoctorCmd(), func(w *domainmocks.MockWorkflow) {
		w.EXPECT().Doctor(mock.Anything, mock.Anything).Return(domain.ErrDiagnosticsFailed).Once()
	}, "doctor")

	require.ErrorIs(t, err, domain.ErrDiagnosticsFailed)
}
