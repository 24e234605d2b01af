package store

import (
	"context"
	"encoding/json"
	"fmt"

	"quizdeck/ent"
	"quizdeck/ent/snapshot"
	"quizdeck/internal/quiz"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *quiz.Snapshot) error {
	dataMap, err := snapshotToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	existing, err := r.client.Snapshot.Query().
		Where(snapshot.Slot(ResumeSlot)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetVersion(snap.Version).
			SetQuiz(snap.Quiz).
			SetData(dataMap).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Snapshot.Create().
			SetSlot(ResumeSlot).
			SetVersion(snap.Version).
			SetQuiz(snap.Quiz).
			SetData(dataMap).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context) (*quiz.Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Where(snapshot.Slot(ResumeSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	// A stale or corrupt snapshot is treated as absent rather than an
	// error: the user just doesn't get a resume offer.
	if row.Version != quiz.SnapshotVersion {
		return nil, nil
	}
	snap, err := mapToSnapshot(row.Data)
	if err != nil {
		return nil, nil
	}
	return snap, nil
}

func (r *snapshotRepo) Clear(ctx context.Context) error {
	_, err := r.client.Snapshot.Delete().
		Where(snapshot.Slot(ResumeSlot)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// snapshotToMap converts a session snapshot to map[string]any for ent
// JSON storage.
func snapshotToMap(snap *quiz.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToSnapshot converts stored JSON back to a session snapshot.
func mapToSnapshot(m map[string]any) (*quiz.Snapshot, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var snap quiz.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SessionSaver adapts the snapshot repo to the session's Saver interface.
type SessionSaver struct {
	repo SnapshotRepo
}

// SessionSaver returns a quiz.Saver that writes to this store's resume slot.
func (s *Store) SessionSaver() *SessionSaver {
	return &SessionSaver{repo: s.SnapshotRepo()}
}

func (a *SessionSaver) Save(snap *quiz.Snapshot) error {
	return a.repo.Save(context.Background(), snap)
}

func (a *SessionSaver) Clear() error {
	return a.repo.Clear(context.Background())
}
