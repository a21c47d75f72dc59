// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-review-market/internal/logger"
	"github.com/MKhiriev/go-review-market/internal/mock"
	"github.com/MKhiriev/go-review-market/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		subjectID  int64
		ownerErr   error
		wantDelete bool
		wantErr    error
	}{
		{name: "self", subjectID: 2, wantDelete: true},
		{name: "someone else", subjectID: 3, wantErr: ErrForbidden},
		{name: "absent", subjectID: 2, ownerErr: store.ErrUserNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockUserRepository(gomock.NewController(t))
			svc := NewUserService(repo, logger.Nop())

			repo.EXPECT().OwnerID(gomock.Any(), int64(2)).Return(int64(2), tt.ownerErr)
			if tt.wantDelete {
				repo.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(nil)
			}

			err := svc.DeleteUser(context.Background(), tt.subjectID, 2)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
