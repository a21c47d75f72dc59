// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/store"
)

// authorizeOwner is the single ownership check for every mutation of a
// user-owned record. It loads only the owner id of resourceID and returns:
//   - ErrNotFound (wrapping the store error) when the record is absent;
//   - ErrForbidden when subjectID is not the owner;
//   - nil when the caller may proceed with the mutation.
func authorizeOwner(ctx context.Context, loader store.OwnerLoader, subjectID, resourceID int64) error {
	ownerID, err := loader.OwnerID(ctx, resourceID)
	if err != nil {
		return notFound(err)
	}

	if ownerID != subjectID {
		logger.FromContext(ctx).Warn().
			Str("func", "authorizeOwner").
			Int64("subject_id", subjectID).
			Int64("resource_id", resourceID).
			Msg("subject does not own the resource")
		return ErrForbidden
	}

	return nil
}

// notFound wraps store not-found sentinels in ErrNotFound and leaves other
// errors untouched.
func notFound(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrReviewNotFound),
		errors.Is(err, store.ErrCommentNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}

// constraint maps store constraint errors raised on write to service errors.
func constraint(err error) error {
	if errors.Is(err, store.ErrConstraintViolation) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return notFound(err)
}

// authorOf resolves the author of a new review or comment. A zero requested
// id means "the caller"; any other id must equal the caller.
func authorOf(subjectID, requestedID int64) (int64, error) {
	if requestedID != 0 && requestedID != subjectID {
		return 0, ErrForbidden
	}
	return subjectID, nil
}
