package user

import (
	"context"
	"mime/multipart"
	"testing"

	"lunch-chooser/domain"
	"lunch-chooser/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users        map[string]*entities.User
	requirements map[string]entities.DietaryRequirement
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:        make(map[string]*entities.User),
		requirements: make(map[string]entities.DietaryRequirement),
	}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	for id, u := range f.users {
		if u.Email == user.Email && id != user.ID.String() {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) ReplaceDietaryRequirements(ctx context.Context, user *entities.User, requirements []entities.DietaryRequirement) error {
	user.DietaryRequirements = requirements
	return nil
}

func (f *fakeUserRepository) GetDietaryRequirementsByIDs(ctx context.Context, ids []string) ([]entities.DietaryRequirement, error) {
	result := make([]entities.DietaryRequirement, 0, len(ids))
	for _, id := range ids {
		if requirement, ok := f.requirements[id]; ok {
			result = append(result, requirement)
		}
	}
	return result, nil
}

func (f *fakeUserRepository) GetAllDietaryRequirements(ctx context.Context) ([]entities.DietaryRequirement, error) {
	result := make([]entities.DietaryRequirement, 0, len(f.requirements))
	for _, requirement := range f.requirements {
		result = append(result, requirement)
	}
	return result, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID string) string {
	return "token-" + userID
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, error) {
	return "", nil
}

type fakeS3 struct{}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExts ...string) (string, error) {
	return folder + "/" + fileName + ".png", nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExts ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.example/"
	if len(link) > len(prefix) && link[:len(prefix)] == prefix {
		return link[len(prefix):]
	}
	return ""
}

func newTestService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, &fakeJWTService{}, &fakeS3{}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newTestService()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", registered.Email)
	assert.NotEmpty(t, registered.ID)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+registered.ID, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "another-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	service, repo := newTestService()
	id := uuid.New()
	repo.users[id.String()] = &entities.User{ID: id, Email: "alice@example.com", Name: "Alice"}

	res, err := service.Me(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)
	assert.NotNil(t, res.DietaryRequirements)

	_, err = service.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	service, repo := newTestService()
	id := uuid.New()
	repo.users[id.String()] = &entities.User{ID: id, Email: "alice@example.com", Name: "Alice"}
	repo.requirements["diet_vegan"] = entities.DietaryRequirement{ID: "diet_vegan", Name: "vegan"}

	lat := -6.2
	res, err := service.UpdateUser(context.Background(), domain.UpdateUserRequest{
		Name:                  "Alice B",
		DefaultLocationLat:    &lat,
		DietaryRequirementIDs: []string{"diet_vegan"},
	}, id.String())
	require.NoError(t, err)

	assert.Equal(t, "Alice B", res.Name)
	assert.Equal(t, "alice@example.com", res.Email)
	require.NotNil(t, res.DefaultLocationLat)
	assert.Equal(t, -6.2, *res.DefaultLocationLat)
	require.Len(t, res.DietaryRequirements, 1)
	assert.Equal(t, "diet_vegan", res.DietaryRequirements[0].ID)
}

func TestUpdateUserUnknownDietaryRequirement(t *testing.T) {
	service, repo := newTestService()
	id := uuid.New()
	repo.users[id.String()] = &entities.User{ID: id, Email: "alice@example.com"}

	_, err := service.UpdateUser(context.Background(), domain.UpdateUserRequest{
		DietaryRequirementIDs: []string{"diet_unobtainium"},
	}, id.String())
	assert.ErrorIs(t, err, domain.ErrDietaryRequirementInvalid)
}

func TestUpdateUserClearDietaryRequirements(t *testing.T) {
	service, repo := newTestService()
	id := uuid.New()
	repo.users[id.String()] = &entities.User{
		ID:                  id,
		Email:               "alice@example.com",
		DietaryRequirements: []entities.DietaryRequirement{{ID: "diet_vegan"}},
	}

	// An explicit empty list clears the set; a nil list leaves it alone.
	res, err := service.UpdateUser(context.Background(), domain.UpdateUserRequest{
		DietaryRequirementIDs: []string{},
	}, id.String())
	require.NoError(t, err)
	assert.Empty(t, res.DietaryRequirements)
}

func TestUploadProfileImage(t *testing.T) {
	service, repo := newTestService()
	id := uuid.New()
	repo.users[id.String()] = &entities.User{ID: id, Email: "alice@example.com"}

	url, err := service.UploadProfileImage(context.Background(), domain.UploadProfileImageRequest{
		Image: &multipart.FileHeader{Filename: "me.png"},
	}, id.String())
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/profiles/profile-"+id.String()+".png", url)
	assert.Equal(t, url, repo.users[id.String()].ImageURL)

	// A second upload reuses the existing object key.
	again, err := service.UploadProfileImage(context.Background(), domain.UploadProfileImageRequest{
		Image: &multipart.FileHeader{Filename: "me2.png"},
	}, id.String())
	require.NoError(t, err)
	assert.Equal(t, url, again)
}

func TestGetDietaryRequirements(t *testing.T) {
	service, repo := newTestService()
	repo.requirements["diet_vegan"] = entities.DietaryRequirement{ID: "diet_vegan", Name: "vegan", Description: "No animal products"}

	res, err := service.GetDietaryRequirements(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "vegan", res[0].Name)
}
