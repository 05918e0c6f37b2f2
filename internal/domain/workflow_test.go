package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covquest.dev/pkg/covquest/internal/adapter"
	adaptermocks "covquest.dev/pkg/covquest/internal/adapter/mocks"
	controllermocks "covquest.dev/pkg/covquest/internal/controller/mocks"
	m "covquest.dev/pkg/covquest/internal/model"
	"covquest.dev/pkg/covquest/internal/testutil"
)

func newRealWorkflow(ui *controllermocks.MockUI, random RandomSource) Workflow {
	return NewWorkflow(
		adapter.NewGitRepositoryOpener(),
		adapter.NewHTMLReportReader(),
		adapter.NewLocalWorkspaceFSAdapter(),
		ui,
		random,
	)
}

func scenarioArgs(dir string) RunArgs {
	return RunArgs{Workspace: m.Path(dir), User: "alice", Settings: anyExtensionSettings()}
}

func TestWorkflow_Generate(t *testing.T) {
	fixture := newScenarioRepo(t)
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayChallenges(mock.Anything, mock.MatchedBy(func(challenges []m.Challenge) bool {
		return len(challenges) == 1 && challenges[0].QualifiedName() == "x.Foo"
	})).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	err := newRealWorkflow(mockUI, &fixedRandom{}).Generate(context.Background(), ChallengeArgs{
		RunArgs: scenarioArgs(fixture.Dir),
		Count:   3,
	})
	require.NoError(t, err)
}

func TestWorkflow_GenerateNoChallenge(t *testing.T) {
	fixture := newScenarioRepo(t)
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayNoChallenge(mock.Anything, "bob", mock.Anything).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	args := scenarioArgs(fixture.Dir)
	args.User = "bob"

	err := newRealWorkflow(mockUI, &fixedRandom{}).Generate(context.Background(), ChallengeArgs{RunArgs: args})
	require.ErrorIs(t, err, ErrNoEligibleCandidate)
}

func TestWorkflow_GenerateStartError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	startErr := errors.New("ui failed")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(startErr).Once()

	err := newRealWorkflow(mockUI, nil).Generate(context.Background(), ChallengeArgs{
		RunArgs: RunArgs{Workspace: m.Path(t.TempDir()), User: "alice", Settings: DefaultSettings()},
	})
	require.ErrorIs(t, err, startErr)
}

func TestWorkflow_GenerateRepositoryError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	err := newRealWorkflow(mockUI, nil).Generate(context.Background(), ChallengeArgs{
		RunArgs: RunArgs{Workspace: m.Path(t.TempDir()), User: "alice", Settings: DefaultSettings()},
	})
	require.ErrorIs(t, err, ErrRepositoryAccess)
}

func TestWorkflow_InvalidSettings(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)

	settings := DefaultSettings()
	settings.Layout = "unknown"

	err := newRealWorkflow(mockUI, nil).Scan(context.Background(), ScanArgs{
		RunArgs: RunArgs{Workspace: m.Path(t.TempDir()), Settings: settings},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure pipeline")
}

func TestWorkflow_Scan(t *testing.T) {
	tests := []struct {
		name    string
		all     bool
		wantSrc []m.Path
	}{
		{name: "eligible only", all: false, wantSrc: []m.Path{"src/main/x/Foo.ext"}},
		{name: "all candidates", all: true, wantSrc: []m.Path{"src/main/x/Bar.ext", "src/main/x/Foo.ext"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newScenarioRepo(t)
			mockUI := controllermocks.NewMockUI(t)

			var got []m.Candidate

			mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			mockUI.EXPECT().DisplayCandidates(mock.Anything, "alice", mock.Anything).
				Run(func(_ context.Context, _ string, candidates []m.Candidate) {
					got = candidates
				}).Return(nil).Once()
			mockUI.EXPECT().Close(mock.Anything).Return().Once()

			err := newRealWorkflow(mockUI, nil).Scan(context.Background(), ScanArgs{
				RunArgs:  scenarioArgs(fixture.Dir),
				All:      tt.all,
				Parallel: 2,
			})
			require.NoError(t, err)

			sources := make([]m.Path, 0, len(got))
			for _, candidate := range got {
				sources = append(sources, candidate.Source)
			}

			assert.Equal(t, tt.wantSrc, sources)
		})
	}
}

func TestWorkflow_Inspect(t *testing.T) {
	fixture := newScenarioRepo(t)
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayCandidates(mock.Anything, "", mock.MatchedBy(func(candidates []m.Candidate) bool {
		return len(candidates) == 2 &&
			candidates[0].Report.Uncovered == 1 &&
			candidates[1].Report.Absent
	})).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	args := scenarioArgs(fixture.Dir)
	args.User = ""

	err := newRealWorkflow(mockUI, nil).Inspect(context.Background(), InspectArgs{
		RunArgs: args,
		Paths:   []m.Path{"src/main/x/Foo.ext", "src/main/x/Missing.ext"},
	})
	require.NoError(t, err)
}

func TestWorkflow_DoctorHealthyWorkspace(t *testing.T) {
	fixture := newScenarioRepo(t)
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayDiagnostics(mock.Anything, mock.MatchedBy(func(checks []m.Check) bool {
		for _, check := range checks {
			if !check.OK {
				return false
			}
		}

		return len(checks) == 5
	})).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	err := newRealWorkflow(mockUI, nil).Doctor(context.Background(), DoctorArgs{RunArgs: scenarioArgs(fixture.Dir)})
	require.NoError(t, err)
}

func TestWorkflow_DoctorReportsFailures(t *testing.T) {
	dir := t.TempDir()
	mockUI := controllermocks.NewMockUI(t)

	var got []m.Check

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayDiagnostics(mock.Anything, mock.Anything).
		Run(func(_ context.Context, checks []m.Check) { got = checks }).
		Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	err := newRealWorkflow(mockUI, nil).Doctor(context.Background(), DoctorArgs{
		RunArgs: RunArgs{Workspace: m.Path(dir), Settings: DefaultSettings()},
	})
	require.ErrorIs(t, err, ErrDiagnosticsFailed)

	require.Len(t, got, 2)
	assert.Equal(t, "git repository", got[0].Name)
	assert.False(t, got[0].OK)
	assert.Equal(t, "report root", got[1].Name)
	assert.False(t, got[1].OK)
}

func TestWorkflow_DoctorMissingIndex(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	fixture.CommitFiles("alice", "src/main/java/a/Foo.java")
	testutil.WriteReport(t, filepath.Join(fixture.Dir, "target", "site", "jacoco"), "a/Foo.java.html", 1, 0, 0)

	mockUI := controllermocks.NewMockUI(t)

	var got []m.Check

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayDiagnostics(mock.Anything, mock.Anything).
		Run(func(_ context.Context, checks []m.Check) { got = checks }).
		Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	err := newRealWorkflow(mockUI, nil).Doctor(context.Background(), DoctorArgs{
		RunArgs: RunArgs{Workspace: m.Path(fixture.Dir), User: "alice", Settings: DefaultSettings()},
	})
	require.ErrorIs(t, err, ErrDiagnosticsFailed)
	assert.Contains(t, err.Error(), "report index")

	last := got[len(got)-1]
	assert.Equal(t, "report index", last.Name)
	assert.False(t, last.OK)
}

func TestWorkflow_DisplayErrorsAreWrapped(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	fsAdapter := adaptermocks.NewMockWorkspaceFSAdapter(t)
	displayErr := errors.New("broken pipe")

	fsAdapter.EXPECT().Resolve(mock.Anything, testWorkspace, DefaultReportRoot).Return(m.Path("/r"))

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayCandidates(mock.Anything, "", mock.Anything).Return(displayErr).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	workflow := NewWorkflow(
		adaptermocks.NewMockRepositoryOpener(t),
		adaptermocks.NewMockReportReader(t),
		fsAdapter,
		mockUI,
		nil,
	)

	err := workflow.Inspect(context.Background(), InspectArgs{
		RunArgs: RunArgs{Workspace: testWorkspace, Settings: DefaultSettings()},
		Paths:   []m.Path{"README.md"},
	})
	require.ErrorIs(t, err, displayErr)
	assert.Contains(t, err.Error(), "display")
}
