package achievements

import (
	"github.com/abhisek/lexio/internal/progress"
)

// LoadSnapshot assembles an evaluation Snapshot from the progress store.
func LoadSnapshot(st *progress.Store) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.MasteredIDs, err = st.MasteredIDs(); err != nil {
		return Snapshot{}, err
	}
	if snap.FavoriteIDs, err = st.FavoriteIDs(); err != nil {
		return Snapshot{}, err
	}
	if snap.TodayLearned, err = st.TodayLearnedCount(); err != nil {
		return Snapshot{}, err
	}
	if snap.TodayMastered, err = st.TodayMasteredCount(); err != nil {
		return Snapshot{}, err
	}
	if snap.Results, err = st.History(); err != nil {
		return Snapshot{}, err
	}
	if snap.VisitDays, err = st.VisitDays(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
