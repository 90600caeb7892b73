package control

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hauraqrrta/smartmosspanel-app/internal/validation"
	"github.com/hauraqrrta/smartmosspanel-app/models"
)

// fakeDynamo holds one control item and applies UpdateItem expressions
// the way DynamoDB would: atomically, setting only the named attributes.
type fakeDynamo struct {
	mu          sync.Mutex
	item        map[string]types.AttributeValue
	updateCalls int
	failUpdate  error
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.item == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updateCalls++
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}

	if f.item == nil {
		f.item = map[string]types.AttributeValue{
			"control_id": in.Key["control_id"],
		}
	}

	// The store names placeholders symmetrically (#x / :x), so each value
	// key maps straight to an attribute name.
	for valueKey, v := range in.ExpressionAttributeValues {
		attr := in.ExpressionAttributeNames["#"+strings.TrimPrefix(valueKey, ":")]
		if attr == "" {
			continue
		}
		f.item[attr] = v
	}

	out := make(map[string]types.AttributeValue, len(f.item))
	for k, v := range f.item {
		out[k] = v
	}
	return &dynamodb.UpdateItemOutput{Attributes: out}, nil
}

func newTestStore(fake *fakeDynamo) *StateStore {
	return &StateStore{
		Client:    fake,
		TableName: "control",
		now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestReadDefaultWhenUnset(t *testing.T) {
	store := newTestStore(&fakeDynamo{})

	state, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := models.DefaultControlState()
	if state.Mode != want.Mode || state.Pump != want.Pump || state.Fan != want.Fan {
		t.Errorf("state = %+v, want %+v", state, want)
	}
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	fake := &fakeDynamo{}
	store := newTestStore(fake)
	ctx := context.Background()

	if _, err := store.Update(ctx, models.ControlUpdate{Mode: models.ModeAuto, Pump: models.StatusOff, Fan: models.StatusOff}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	state, err := store.Update(ctx, models.ControlUpdate{Pump: models.StatusOn})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if state.Mode != models.ModeAuto || state.Pump != models.StatusOn || state.Fan != models.StatusOff {
		t.Errorf("state = %+v, want {AUTO ON OFF}", state)
	}
	if state.LastUpdated == "" {
		t.Error("lastUpdated not set")
	}
}

func TestUpdateReturnsFullSnapshotOnFirstWrite(t *testing.T) {
	store := newTestStore(&fakeDynamo{})

	state, err := store.Update(context.Background(), models.ControlUpdate{Mode: models.ModeManual})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if state.Mode != models.ModeManual || state.Pump != models.StatusOff || state.Fan != models.StatusOff {
		t.Errorf("state = %+v, want {MANUAL OFF OFF}", state)
	}
}

func TestInvalidUpdateLeavesStateUntouched(t *testing.T) {
	fake := &fakeDynamo{}
	store := newTestStore(fake)
	ctx := context.Background()

	if _, err := store.Update(ctx, models.ControlUpdate{Mode: models.ModeAuto}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}
	callsBefore := fake.updateCalls

	_, err := store.Update(ctx, models.ControlUpdate{Mode: "WEIRD"})
	if !errors.Is(err, validation.ErrInvalidField) {
		t.Fatalf("error = %v, want ErrInvalidField", err)
	}

	if fake.updateCalls != callsBefore {
		t.Error("rejected update still reached storage")
	}

	state, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if state.Mode != models.ModeAuto {
		t.Errorf("mode = %q, want AUTO", state.Mode)
	}
}

func TestEmptyUpdateRejected(t *testing.T) {
	fake := &fakeDynamo{}
	store := newTestStore(fake)

	_, err := store.Update(context.Background(), models.ControlUpdate{})
	if !errors.Is(err, validation.ErrNoFields) {
		t.Fatalf("error = %v, want ErrNoFields", err)
	}
	if fake.updateCalls != 0 {
		t.Error("empty update reached storage")
	}
}

func TestConcurrentDisjointUpdatesBothLand(t *testing.T) {
	fake := &fakeDynamo{}
	store := newTestStore(fake)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := store.Update(ctx, models.ControlUpdate{Pump: models.StatusOn}); err != nil {
			t.Errorf("pump update failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := store.Update(ctx, models.ControlUpdate{Fan: models.StatusOn}); err != nil {
			t.Errorf("fan update failed: %v", err)
		}
	}()
	wg.Wait()

	state, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if state.Pump != models.StatusOn || state.Fan != models.StatusOn {
		t.Errorf("state = %+v, want pump and fan both ON", state)
	}
}

func TestUpdateStorageFailure(t *testing.T) {
	fake := &fakeDynamo{failUpdate: errors.New("unreachable")}
	store := newTestStore(fake)

	_, err := store.Update(context.Background(), models.ControlUpdate{Pump: models.StatusOn})
	if err == nil {
		t.Fatal("expected storage error")
	}
	if errors.Is(err, validation.ErrInvalidField) || errors.Is(err, validation.ErrNoFields) {
		t.Errorf("infrastructure error classified as validation: %v", err)
	}
}
