package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии. Refresh токен после этого бесполезен
	return s.authRepo.DeleteSession(ctx, sessionID)
}
