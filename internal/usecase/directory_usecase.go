package usecase

import (
	"context"
	"log"
	"sort"

	"luthier_works/internal/usecase/interfaces"
)

// DirectoryPageSize is the page size requested from the authentication
// service. Providers may clamp it (Cognito caps ListUsers at 60 per page);
// the enumeration loop only cares about the opaque cursor.
const DirectoryPageSize = 1000

// IDirectoryEnumerator resolves the current set of staff/admin principals by
// paginating the full user directory. Cost is one round trip per page
// regardless of how few staff exist, which makes it the dominant latency of
// any fan-out; results are never cached between fan-outs.

type IDirectoryEnumerator interface {
	ListStaffIDs(ctx context.Context) ([]string, error)
}

type DirectoryEnumerator struct {
	pager interfaces.IDirectoryPager
}

var _ IDirectoryEnumerator = (*DirectoryEnumerator)(nil)

func NewDirectoryEnumerator(pager interfaces.IDirectoryPager) *DirectoryEnumerator {
	return &DirectoryEnumerator{pager: pager}
}

func (e *DirectoryEnumerator) ListStaffIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	cursor := ""
	pages := 0
	for {
		entries, next, err := e.pager.ListUsersPage(ctx, DirectoryPageSize, cursor)
		if err != nil {
			log.Printf("[directory][usecase] page listing failed page=%d err=%v", pages, err)
			return nil, err
		}
		pages++
		for _, entry := range entries {
			if entry.ID == "" || !entry.Role.IsStaff() {
				continue
			}
			seen[entry.ID] = struct{}{}
		}
		if next == "" {
			break
		}
		cursor = next
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	log.Printf("[directory][usecase] staff enumerated pages=%d staff=%d", pages, len(ids))
	return ids, nil
}
