package usecase

import (
	"context"
	"testing"
	"time"

	"go-medical-console/config"
	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/internal/repository"
	"go-medical-console/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	grant       *entity.AuthGrant
	loginErr    error
	registered  *entity.AuthGrant
	registerArg any
	me          *entity.User
	meErr       error
	meToken     string
	logins      int
	logouts     int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*entity.AuthGrant, error) {
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.grant, nil
}

func (f *fakeAuth) Register(ctx context.Context, payload any) (*entity.AuthGrant, error) {
	f.registerArg = payload
	return f.registered, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logouts++
	return nil
}

func (f *fakeAuth) Me(ctx context.Context) (*entity.User, error) {
	f.meToken = api.TokenFromContext(ctx)
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.me, nil
}

type authFixture struct {
	mr    *miniredis.Miniredis
	auth  *fakeAuth
	audit *fakeAudit
	jwt   *jwt.JWTService
	uc    AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	fx := &authFixture{
		mr:    mr,
		auth:  &fakeAuth{},
		audit: &fakeAudit{},
		jwt:   jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Hour}),
	}
	fx.uc = NewAuthUsecase(quietLogger(), fx.auth, repository.NewSessionRepository(rdb), fx.jwt, fx.audit, time.Hour)
	return fx
}

func (fx *authFixture) sessionID(t *testing.T, token string) string {
	t.Helper()
	claims, err := fx.jwt.ValidateToken(token)
	require.NoError(t, err)
	return claims.SessionID
}

func TestLoginStoresSessionAndDropsPrevious(t *testing.T) {
	fx := newAuthFixture(t)
	fx.auth.grant = &entity.AuthGrant{
		AccessToken: "upstream-1",
		User:        entity.User{ID: 3, Nom: "Durand", Prenom: "Léa", Role: entity.RoleSecretaire},
	}
	fx.mr.HSet("console_session:old", "access_token", "stale")

	res, err := fx.uc.Login(context.Background(), &dto.LoginRequest{Email: "lea@clinique.fr", Password: "secret"}, "old")
	require.NoError(t, err)

	assert.False(t, fx.mr.Exists("console_session:old"))
	id := fx.sessionID(t, res.Token)
	assert.Equal(t, "upstream-1", fx.mr.HGet("console_session:"+id, "access_token"))
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "Léa Durand", res.User.FullName)
	assert.True(t, res.User.IsSecretaire)
	assert.Equal(t, []recordedAudit{{action: entity.AuditActionLogin}}, fx.audit.entries)
}

func TestLoginMapsRejectedCredentials(t *testing.T) {
	fx := newAuthFixture(t)
	fx.auth.loginErr = &api.HTTPError{StatusCode: 401, Message: "Identifiants invalides"}

	_, err := fx.uc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.fr", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, fx.mr.Keys())
}

func TestLoginFetchesUserWhenGrantHasNone(t *testing.T) {
	fx := newAuthFixture(t)
	fx.auth.grant = &entity.AuthGrant{AccessToken: "upstream-2"}
	fx.auth.me = &entity.User{ID: 8, Role: entity.RoleMedecin}

	res, err := fx.uc.Login(context.Background(), &dto.LoginRequest{Email: "m@c.fr", Password: "x"}, "")
	require.NoError(t, err)
	assert.Equal(t, "upstream-2", fx.auth.meToken)
	assert.True(t, res.User.IsMedecin)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	fx := newAuthFixture(t)
	fx.auth.grant = &entity.AuthGrant{AccessToken: "t", User: entity.User{ID: 1, Role: "comptable"}}

	_, err := fx.uc.Login(context.Background(), &dto.LoginRequest{Email: "c@c.fr", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Empty(t, fx.mr.Keys())
}

func TestRegisterSendsPatientRoleAndLogsInWithoutToken(t *testing.T) {
	fx := newAuthFixture(t)
	fx.auth.registered = &entity.AuthGrant{}
	fx.auth.grant = &entity.AuthGrant{AccessToken: "t", User: entity.User{ID: 4, Role: entity.RolePatient}}

	res, err := fx.uc.Register(context.Background(), &dto.RegisterRequest{
		Nom: "Petit", Prenom: "Jean", Email: "jean@c.fr", Password: "motdepasse", PasswordConfirmation: "motdepasse",
	})
	require.NoError(t, err)

	sent, ok := fx.auth.registerArg.(registration)
	require.True(t, ok)
	assert.Equal(t, entity.RolePatient, sent.Role)
	assert.Equal(t, 1, fx.auth.logins)
	assert.True(t, res.User.IsPatient)
	assert.Equal(t, []recordedAudit{{action: entity.AuditActionRegister}}, fx.audit.entries)
}

func TestLogoutClearsSession(t *testing.T) {
	fx := newAuthFixture(t)
	fx.mr.HSet("console_session:s1", "access_token", "t")

	err := fx.uc.Logout(context.Background(), &entity.Session{ID: "s1", User: entity.User{ID: 1, Role: entity.RoleAdmin}})
	require.NoError(t, err)
	assert.False(t, fx.mr.Exists("console_session:s1"))
	assert.Equal(t, 1, fx.auth.logouts)
}

func TestMeFallsBackToCachedUser(t *testing.T) {
	fx := newAuthFixture(t)
	session := &entity.Session{ID: "s1", User: entity.User{ID: 1, Nom: "Admin", Role: entity.RoleAdmin}}
	fx.mr.HSet("console_session:s1", "access_token", "t")

	fx.auth.meErr = api.ErrUnavailable
	res, err := fx.uc.Me(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Admin", res.Nom)
	assert.True(t, fx.mr.Exists("console_session:s1"))
	assert.Empty(t, fx.audit.entries)

	fx.auth.meErr = &api.HTTPError{StatusCode: 401}
	_, err = fx.uc.Me(context.Background(), session)
	assert.Error(t, err)
	assert.False(t, fx.mr.Exists("console_session:s1"))
	require.Len(t, fx.audit.entries, 1)
	assert.Equal(t, entity.AuditActionLogout, fx.audit.entries[0].action)
}

func TestMeRefreshesCachedUser(t *testing.T) {
	fx := newAuthFixture(t)
	session := &entity.Session{ID: "s1", AccessToken: "t", User: entity.User{ID: 1, Nom: "Ancien", Role: entity.RoleAdmin}}
	fx.auth.me = &entity.User{ID: 1, Nom: "Nouveau", Role: entity.RoleAdmin}

	res, err := fx.uc.Me(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Nouveau", res.Nom)
	assert.Contains(t, fx.mr.HGet("console_session:s1", "current_user"), "Nouveau")
}
