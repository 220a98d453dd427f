package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Record shapes used across the tests. Each stage below returns a
// different shape than it receives.
type raw struct{ Value string }
type semi struct{ Value string }
type finished struct {
	Value string
	Box   int
}

func (r raw) String() string { return r.Value }

var (
	assemble = Func("Assemble", func(r raw) (semi, error) {
		return semi{Value: r.Value + " - Assembled"}, nil
	})
	inspect = Func("Inspect", func(s semi) (semi, error) {
		if strings.Contains(s.Value, "Defect") {
			return semi{Value: s.Value + " - Rejected"}, nil
		}
		return semi{Value: s.Value + " - Passed QC"}, nil
	})
	pack = WithArg("Pack", func(s semi, box int) (finished, error) {
		if box < 0 {
			return finished{}, ErrInvalidArgument
		}
		return finished{Value: s.Value + " - Packed", Box: box}, nil
	})
)

type recordingEmitter struct {
	events []string
}

func (e *recordingEmitter) EmitPipelineStart(_, pipelineType string, stageCount int) {
	e.events = append(e.events, "pipeline-start:"+pipelineType)
}
func (e *recordingEmitter) EmitStageStart(_, stageName string, _ uint32) {
	e.events = append(e.events, "stage-start:"+stageName)
}
func (e *recordingEmitter) EmitStageEnd(_, stageName string, _ uint32, _ time.Duration) {
	e.events = append(e.events, "stage-end:"+stageName)
}
func (e *recordingEmitter) EmitError(_, stageName, _ string) {
	e.events = append(e.events, "error:"+stageName)
}
func (e *recordingEmitter) EmitPipelineEnd(string, int, time.Duration) {
	e.events = append(e.events, "pipeline-end")
}

func TestPipeline_SequentialStages(t *testing.T) {
	t.Log("Testing that each Process call applies exactly one stage")

	state := New(Config{}, raw{Value: "Raw Steel"}, assemble, inspect, pack)

	p, ok := state.(InProgress)
	if !ok {
		t.Fatalf("Expected InProgress, got %T", state)
	}
	if p.Remaining() != 3 || p.Next() != "Assemble" {
		t.Fatalf("Unexpected initial state: remaining=%d next=%q", p.Remaining(), p.Next())
	}

	afterAssembly, err := p.Process()
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if got := afterAssembly.Record(); got != (semi{Value: "Raw Steel - Assembled"}) {
		t.Errorf("After assembly, got %#v", got)
	}

	afterQC, err := afterAssembly.(InProgress).Process()
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if afterQC.(InProgress).Remaining() != 1 {
		t.Fatalf("Expected 1 remaining stage, got %d", afterQC.(InProgress).Remaining())
	}

	final, err := afterQC.(InProgress).Process(5)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	done, ok := final.(Complete)
	if !ok {
		t.Fatalf("Expected Complete after last stage, got %T", final)
	}

	want := finished{Value: "Raw Steel - Assembled - Passed QC - Packed", Box: 5}
	if got := done.FinalRecord(); got != want {
		t.Errorf("Final record = %#v, want %#v", got, want)
	}
	typed, err := Final[finished](done)
	if err != nil || typed != want {
		t.Errorf("Final[finished] = %#v, %v", typed, err)
	}
	t.Log("Sequential stages test passed!")
}

func TestPipeline_StatesAreImmutable(t *testing.T) {
	state := New(Config{}, raw{Value: "Raw Steel - Defect"}, assemble, inspect)
	start := state.(InProgress)

	first, err := start.Process()
	if err != nil {
		t.Fatal(err)
	}
	second, err := start.Process()
	if err != nil {
		t.Fatal(err)
	}

	if start.Record() != (raw{Value: "Raw Steel - Defect"}) || start.Remaining() != 2 {
		t.Errorf("Process mutated its receiver: %#v remaining=%d", start.Record(), start.Remaining())
	}
	if first.Record() != second.Record() {
		t.Errorf("Processing the same state twice diverged: %#v vs %#v", first.Record(), second.Record())
	}

	a, _ := first.(InProgress).Process()
	b, _ := second.(InProgress).Process()
	if len(a.History()) != 2 || len(b.History()) != 2 || len(first.History()) != 1 {
		t.Errorf("History leaked between states: %d %d %d", len(a.History()), len(b.History()), len(first.History()))
	}
	if got := a.(Complete).FinalRecord(); got != (semi{Value: "Raw Steel - Defect - Assembled - Rejected"}) {
		t.Errorf("Defect path got %#v", got)
	}
}

func TestPipeline_FinalRecordOnlyOnComplete(t *testing.T) {
	if _, ok := reflect.TypeOf(InProgress{}).MethodByName("FinalRecord"); ok {
		t.Fatal("InProgress must not expose FinalRecord")
	}
	if _, ok := reflect.TypeOf(Complete{}).MethodByName("FinalRecord"); !ok {
		t.Fatal("Complete must expose FinalRecord")
	}
}

func TestPipeline_NoStagesIsComplete(t *testing.T) {
	state := New(Config{}, raw{Value: "as is"})
	done, ok := state.(Complete)
	if !ok {
		t.Fatalf("Expected Complete for an empty stage list, got %T", state)
	}
	if done.FinalRecord() != (raw{Value: "as is"}) {
		t.Errorf("Unexpected final record %#v", done.FinalRecord())
	}
	if len(done.History()) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(done.History()))
	}
}

func TestPipeline_StageListIsCopied(t *testing.T) {
	stages := []Stage{assemble, inspect}
	state := New(Config{}, raw{Value: "x"}, stages...)
	stages[0] = pack

	if next := state.(InProgress).Next(); next != "Assemble" {
		t.Errorf("New must copy the stage list; next stage is %q", next)
	}
}

func TestPipeline_Errors(t *testing.T) {
	tests := []struct {
		name     string
		initial  any
		stages   []Stage
		args     [][]any
		index    int
		wantKind error
	}{
		{
			name:     "record of the wrong shape",
			initial:  semi{Value: "already assembled"},
			stages:   []Stage{assemble},
			wantKind: ErrRecordMismatch,
		},
		{
			name:     "missing argument",
			initial:  raw{Value: "x"},
			stages:   []Stage{assemble, pack},
			index:    1,
			wantKind: ErrInvalidArgument,
		},
		{
			name:     "argument of the wrong type",
			initial:  semi{Value: "x"},
			stages:   []Stage{pack},
			args:     [][]any{{"five"}},
			wantKind: ErrInvalidArgument,
		},
		{
			name:     "unexpected argument",
			initial:  raw{Value: "x"},
			stages:   []Stage{assemble},
			args:     [][]any{{1}},
			wantKind: ErrInvalidArgument,
		},
		{
			name:     "stage rejects argument",
			initial:  semi{Value: "x"},
			stages:   []Stage{pack},
			args:     [][]any{{-1}},
			wantKind: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &recordingEmitter{}
			_, err := Run(New(Config{Emitter: emitter}, tt.initial, tt.stages...), tt.args...)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantKind)
			}
			var stageErr *StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("Expected *StageError, got %T", err)
			}
			if stageErr.Index != tt.index {
				t.Errorf("Failing stage index = %d, want %d", stageErr.Index, tt.index)
			}
			last := emitter.events[len(emitter.events)-1]
			if !strings.HasPrefix(last, "error:") {
				t.Errorf("Expected error event last, got %v", emitter.events)
			}
		})
	}

	if !errors.Is(recordMismatch("s", "x", 1), ErrInvalidArgument) {
		t.Error("ErrRecordMismatch must also match ErrInvalidArgument")
	}
}

func TestPipeline_ZeroInProgress(t *testing.T) {
	if _, err := (InProgress{}).Process(); !errors.Is(err, ErrNoStages) {
		t.Errorf("Expected ErrNoStages, got %v", err)
	}
}

func TestRun_AgreesWithManualProcessing(t *testing.T) {
	done, err := Run(New(Config{}, raw{Value: "Raw Steel"}, assemble, inspect, pack), nil, nil, []any{7})
	if err != nil {
		t.Fatal(err)
	}

	history := done.History()
	if len(history) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(history))
	}
	for i, name := range []string{"Assemble", "Inspect", "Pack"} {
		if history[i].StageName != name || history[i].StageIndex != uint32(i) {
			t.Errorf("History[%d] = %+v", i, history[i])
		}
		if history[i].ExecutionID != done.ExecutionID() {
			t.Errorf("History[%d] has execution ID %q, want %q", i, history[i].ExecutionID, done.ExecutionID())
		}
	}
	if history[0].InputType != "pipeline.raw" || history[2].OutputType != "pipeline.finished" {
		t.Errorf("Unexpected record types in history: %+v", history)
	}
	if got, _ := Final[finished](done); got.Box != 7 {
		t.Errorf("Unexpected final record %#v", got)
	}

	if _, err := Final[raw](done); !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("Final with the wrong type should fail with ErrRecordMismatch, got %v", err)
	}
}

func TestPipeline_EmitterEvents(t *testing.T) {
	emitter := &recordingEmitter{}
	state := New(Config{Emitter: emitter, ExecutionID: "exec-42"}, raw{Value: "x"}, assemble, inspect)

	if state.(InProgress).ExecutionID() != "exec-42" {
		t.Errorf("Execution ID not preserved")
	}
	if desc := state.(InProgress).Describe(); desc != "Assemble->Inspect" {
		t.Errorf("Describe() = %q", desc)
	}
	if _, err := Run(state); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"pipeline-start:Assemble->Inspect",
		"stage-start:Assemble", "stage-end:Assemble",
		"stage-start:Inspect", "stage-end:Inspect",
		"pipeline-end",
	}
	if !reflect.DeepEqual(emitter.events, want) {
		t.Errorf("Events = %v, want %v", emitter.events, want)
	}
}

func TestTap_LogsAndPassesThrough(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tap := Tap("Log", zap.New(core))

	done, err := Run(New(Config{}, raw{Value: "Raw Steel"}, tap, assemble))
	if err != nil {
		t.Fatal(err)
	}
	if done.FinalRecord() != (semi{Value: "Raw Steel - Assembled"}) {
		t.Errorf("Tap altered the record: %#v", done.FinalRecord())
	}

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "Processed: Raw Steel" {
		t.Fatalf("Unexpected log entries: %+v", entries)
	}
	if entries[0].ContextMap()["stage"] != "Log" {
		t.Errorf("Missing stage field: %v", entries[0].ContextMap())
	}

	if _, err := Tap("quiet", nil).Apply(raw{Value: "y"}); err != nil {
		t.Errorf("Tap with nil logger failed: %v", err)
	}
}

func TestLogEmitter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	state := New(Config{Emitter: NewLogEmitter(zap.New(core))}, semi{Value: "x"}, pack)

	if _, err := Run(state, []any{"wrong"}); err == nil {
		t.Fatal("Expected argument error")
	}

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	want := []string{"pipeline started", "stage started", "stage failed"}
	if !reflect.DeepEqual(messages, want) {
		t.Errorf("Messages = %v, want %v", messages, want)
	}
	if logs.FilterMessage("stage failed").All()[0].Level != zapcore.WarnLevel {
		t.Error("Stage failures should be logged at warn level")
	}
}

func TestGenerateExecutionID(t *testing.T) {
	a, b := GenerateExecutionID(), GenerateExecutionID()
	if a == b || len(a) != 36 {
		t.Errorf("Unexpected execution IDs %q, %q", a, b)
	}
}
