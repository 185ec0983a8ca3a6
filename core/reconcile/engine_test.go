package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with the same atomicity contract as the
// real one: a failing ReplaceAll leaves the previous snapshot visible.
type fakeStore struct {
	records    map[string]Snapshot
	failRead   error
	failWrite  error
	readCalls  int
	writeCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]Snapshot)}
}

func (s *fakeStore) ReadAll(ctx context.Context, ownerID string) (Snapshot, error) {
	s.readCalls++
	if s.failRead != nil {
		return nil, s.failRead
	}
	return s.records[ownerID], nil
}

func (s *fakeStore) ReplaceAll(ctx context.Context, ownerID string, snap Snapshot) (int, error) {
	s.writeCalls++
	if s.failWrite != nil {
		// Atomic: the pre-image stays in place.
		return 0, s.failWrite
	}
	s.records[ownerID] = snap
	return len(snap), nil
}

func (s *fakeStore) DeleteAll(ctx context.Context, ownerID string) error {
	s.writeCalls++
	if s.failWrite != nil {
		return s.failWrite
	}
	delete(s.records, ownerID)
	return nil
}

// rec carries a fixed CreatedAt so snapshots built from it compare equal
// across engine calls; the zero-value default is covered separately.
func rec(logicalID string, value float64) Record {
	return Record{LogicalID: logicalID, Label: "exam", Subject: "math", ExamType: "written", Value: value,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func logicalIDs(snap Snapshot) []string {
	ids := make([]string, len(snap))
	for i, r := range snap {
		ids[i] = r.LogicalID
	}
	return ids
}

func TestReconcile_ReplaceIsIdempotent(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, nil)
	client := Snapshot{rec("a", 28), rec("b", 30)}

	first, n1, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, n1)

	second, n2, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, n2)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b"}, logicalIDs(second))
}

func TestReconcile_ReplaceSkipsServerRead(t *testing.T) {
	store := newFakeStore()
	store.records["owner-1"] = Snapshot{rec("old", 18)}
	engine := NewEngine(store, nil)

	final, n, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("new", 25)}, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"new"}, logicalIDs(final))
	assert.Zero(t, store.readCalls, "replace must not read the server snapshot")
}

func TestReconcile_KeyCollisionTieBreak(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		wantValue float64
	}{
		{"PreferClient", PolicyPreferClient, 2},
		{"PreferServer", PolicyPreferServer, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.records["owner-1"] = Snapshot{rec("a", 1)}
			engine := NewEngine(store, nil)

			final, n, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("a", 2)}, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			require.Len(t, final, 1)
			assert.Equal(t, "a", final[0].LogicalID)
			assert.Equal(t, tt.wantValue, final[0].Value)
		})
	}
}

func TestReconcile_UnionOnDisjointKeys(t *testing.T) {
	for _, policy := range []Policy{PolicyPreferClient, PolicyPreferServer} {
		t.Run(policy.String(), func(t *testing.T) {
			store := newFakeStore()
			store.records["owner-1"] = Snapshot{rec("a", 1)}
			engine := NewEngine(store, nil)

			final, n, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("b", 2)}, policy)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			assert.ElementsMatch(t, []string{"a", "b"}, logicalIDs(final))
		})
	}
}

func TestReconcile_MergeKeepsInsertionOrder(t *testing.T) {
	store := newFakeStore()
	store.records["owner-1"] = Snapshot{rec("s1", 1), rec("shared", 1), rec("s2", 1)}
	engine := NewEngine(store, nil)

	client := Snapshot{rec("c1", 2), rec("shared", 2)}
	final, _, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyPreferClient)
	require.NoError(t, err)

	// First side (client) in its own order, then the server-only records.
	assert.Equal(t, []string{"c1", "shared", "s1", "s2"}, logicalIDs(final))
	assert.Equal(t, float64(2), final[1].Value)
}

func TestReconcile_GeneratesMissingLogicalIDs(t *testing.T) {
	store := newFakeStore()
	store.records["owner-1"] = Snapshot{{Label: "server", Value: 1}}
	engine := NewEngine(store, nil)

	client := Snapshot{{Label: "client", Value: 2}}
	final, n, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyPreferClient)
	require.NoError(t, err)

	// Neither side had an id, so both records survive with fresh ones.
	assert.Equal(t, 2, n)
	for _, r := range final {
		assert.NotEmpty(t, r.LogicalID)
	}
	assert.NotEqual(t, final[0].LogicalID, final[1].LogicalID)
}

func TestReconcile_RewritesOwnership(t *testing.T) {
	store := newFakeStore()
	store.records["owner-1"] = Snapshot{{LogicalID: "a", OwnerID: "owner-1", Value: 1}}
	engine := NewEngine(store, nil)

	client := Snapshot{{LogicalID: "b", OwnerID: "someone-else", Value: 2}}
	final, _, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyPreferClient)
	require.NoError(t, err)

	for _, r := range final {
		assert.Equal(t, "owner-1", r.OwnerID)
	}
}

func TestReconcile_DuplicateIDsWithinOneSource(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, nil)

	// Same logical id twice in the client payload: the later record wins,
	// keeping the original position.
	client := Snapshot{rec("a", 1), rec("b", 5), rec("a", 9)}
	final, n, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyPreferClient)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, logicalIDs(final))
	assert.Equal(t, float64(9), final[0].Value)
}

func TestReconcile_DefaultsCreatedAt(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, nil)

	supplied := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	client := Snapshot{
		{LogicalID: "a", Value: 1, CreatedAt: supplied},
		{LogicalID: "b", Value: 2},
	}
	final, _, err := engine.Reconcile(context.Background(), "owner-1", client, PolicyReplace)
	require.NoError(t, err)

	assert.Equal(t, supplied, final[0].CreatedAt)
	assert.False(t, final[1].CreatedAt.IsZero())
}

func TestReconcile_EmptyReplaceDeletesEverything(t *testing.T) {
	store := newFakeStore()
	store.records["owner-1"] = Snapshot{rec("a", 1)}
	engine := NewEngine(store, nil)

	final, n, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{}, PolicyReplace)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, final)

	left, err := store.ReadAll(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestReconcile_UnknownPolicyNeverTouchesStorage(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, nil)

	_, _, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("a", 1)}, Policy(42))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, store.readCalls)
	assert.Zero(t, store.writeCalls)
}

func TestReconcile_AtomicityUnderInsertFailure(t *testing.T) {
	store := newFakeStore()
	preImage := Snapshot{rec("a", 1), rec("b", 2)}
	store.records["owner-1"] = preImage
	store.failWrite = fmt.Errorf("connection lost")
	engine := NewEngine(store, nil)

	_, _, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("c", 3)}, PolicyPreferClient)
	require.ErrorIs(t, err, ErrStorageFailure)

	// The collaborator's atomicity guarantee: the pre-restore snapshot is
	// still what a subsequent read observes.
	store.failWrite = nil
	after, readErr := store.ReadAll(context.Background(), "owner-1")
	require.NoError(t, readErr)
	assert.Equal(t, preImage, after)
}

func TestReconcile_ServerReadFailure(t *testing.T) {
	store := newFakeStore()
	store.failRead = fmt.Errorf("connection lost")
	engine := NewEngine(store, nil)

	_, _, err := engine.Reconcile(context.Background(), "owner-1", Snapshot{rec("a", 1)}, PolicyPreferServer)
	require.ErrorIs(t, err, ErrStorageFailure)
	assert.Zero(t, store.writeCalls, "a failed read must not reach the commit step")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"replace", PolicyReplace, false},
		{"backup", PolicyPreferClient, false},
		{"prefer-client", PolicyPreferClient, false},
		{"server", PolicyPreferServer, false},
		{"prefer-server", PolicyPreferServer, false},
		{"", 0, true},
		{"REPLACE", 0, true},
		{"merge", 0, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
