package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
)

// fakeBlob records uploads and deletes in call order.
type fakeBlob struct {
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeBlob) Upload(_ context.Context, key, _ string, _ io.Reader) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return "https://cdn.test/" + key, key, nil
}

func (f *fakeBlob) Delete(_ context.Context, ref string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, ref)
	return nil
}

// fakeCourseRepo is an in-memory ContentRepo[models.Course].
type fakeCourseRepo struct {
	records     map[int64]*models.Course
	nextID      int64
	insertCalls []map[string]any
	updateCalls []map[string]any
	updateErr   error
	deleted     []int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{records: make(map[int64]*models.Course), nextID: 1}
}

func (r *fakeCourseRepo) List(context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.records))
	for _, c := range r.records {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("course not found")
	}
	return c, nil
}

func (r *fakeCourseRepo) Insert(_ context.Context, fields map[string]any) (*models.Course, error) {
	r.insertCalls = append(r.insertCalls, fields)
	c := courseFromFields(fields)
	c.ID = r.nextID
	r.nextID++
	r.records[c.ID] = c
	return c, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, id int64, fields map[string]any) (*models.Course, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.updateCalls = append(r.updateCalls, fields)
	c, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("course not found")
	}
	if v, ok := fields["title"].(string); ok {
		c.Title = v
	}
	if v, ok := fields["image_url"].(string); ok {
		c.ImageURL = &v
	}
	if v, ok := fields["image_ref"].(string); ok {
		c.ImageRef = &v
	}
	return c, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return apperrors.NewResourceNotFoundError("course not found")
	}
	delete(r.records, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func courseFromFields(fields map[string]any) *models.Course {
	c := &models.Course{}
	if v, ok := fields["title"].(string); ok {
		c.Title = v
	}
	if v, ok := fields["image_url"].(string); ok {
		c.ImageURL = &v
	}
	if v, ok := fields["image_ref"].(string); ok {
		c.ImageRef = &v
	}
	return c
}

// fileHeader builds a real multipart.FileHeader carrying the given content.
func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func courseFields() map[string]any {
	return map[string]any{
		"title":       "Diploma in Nursing",
		"description": "Three year program",
		"duration":    "3 years",
		"fee":         120000.0,
	}
}

func newCourseService(repo *fakeCourseRepo, blob *fakeBlob) *ContentService[models.Course] {
	return NewContentService[models.Course](repo, blob, models.CourseDescriptor, zerolog.Nop())
}

func TestContentServiceCreate_UploadsAssetBeforeInsert(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{}
	svc := newCourseService(repo, blob)

	asset := fileHeader(t, "photo.JPG", "image/jpeg", "fake-image-bytes")
	course, err := svc.Create(context.Background(), courseFields(), asset)
	require.NoError(t, err)

	// Deterministic key: folder plus slugged title plus lowercase extension.
	require.Equal(t, []string{"courses/diploma-in-nursing.jpg"}, blob.uploads)

	require.Len(t, repo.insertCalls, 1)
	assert.Equal(t, "https://cdn.test/courses/diploma-in-nursing.jpg", repo.insertCalls[0]["image_url"])
	assert.Equal(t, "courses/diploma-in-nursing.jpg", repo.insertCalls[0]["image_ref"])
	assert.Equal(t, "Diploma in Nursing", course.Title)
}

func TestContentServiceCreate_ValidationRunsBeforeUpload(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{}
	svc := newCourseService(repo, blob)

	fields := courseFields()
	delete(fields, "description")

	asset := fileHeader(t, "photo.jpg", "image/jpeg", "fake-image-bytes")
	_, err := svc.Create(context.Background(), fields, asset)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, blob.uploads, "no upload may happen for an invalid payload")
	assert.Empty(t, repo.insertCalls)
}

func TestContentServiceCreate_RequiredAssetMissing(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := newCourseService(repo, &fakeBlob{})

	_, err := svc.Create(context.Background(), courseFields(), nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.insertCalls)
}

func TestContentServiceCreate_UploadFailureAbortsInsert(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{uploadErr: errors.New("bucket unreachable")}
	svc := newCourseService(repo, blob)

	asset := fileHeader(t, "photo.jpg", "image/jpeg", "fake-image-bytes")
	_, err := svc.Create(context.Background(), courseFields(), asset)
	require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)

	assert.Empty(t, repo.insertCalls, "a failed upload must leave no partial row")
}

func TestContentServiceUpdate_DeletesSupersededAssetAfterPersist(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{}
	svc := newCourseService(repo, blob)

	oldRef := "courses/old-title.png"
	oldURL := "https://cdn.test/" + oldRef
	repo.records[1] = &models.Course{
		ID:    1,
		Title: "Old Title",
		Asset: models.Asset{ImageURL: &oldURL, ImageRef: &oldRef},
	}

	asset := fileHeader(t, "new.png", "image/png", "fake-image-bytes")
	_, err := svc.Update(context.Background(), 1, map[string]any{"title": "New Title"}, asset)
	require.NoError(t, err)

	assert.Equal(t, []string{"courses/new-title.png"}, blob.uploads)
	assert.Equal(t, []string{oldRef}, blob.deletes)
}

func TestContentServiceUpdate_FailedPersistKeepsOldAsset(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{}
	svc := newCourseService(repo, blob)

	oldRef := "courses/old-title.png"
	repo.records[1] = &models.Course{
		ID:    1,
		Title: "Old Title",
		Asset: models.Asset{ImageRef: &oldRef},
	}
	repo.updateErr = errors.New("constraint violation")

	asset := fileHeader(t, "new.png", "image/png", "fake-image-bytes")
	_, err := svc.Update(context.Background(), 1, map[string]any{"title": "New Title"}, asset)
	require.Error(t, err)

	assert.Empty(t, blob.deletes, "the old object must survive a failed update")
}

func TestContentServiceUpdate_AssetKeyFallsBackToExistingTitle(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{}
	svc := newCourseService(repo, blob)

	repo.records[1] = &models.Course{ID: 1, Title: "Existing Course"}

	asset := fileHeader(t, "new.webp", "image/webp", "fake-image-bytes")
	_, err := svc.Update(context.Background(), 1, map[string]any{"fee": 95000.0}, asset)
	require.NoError(t, err)

	assert.Equal(t, []string{"courses/existing-course.webp"}, blob.uploads)
}

func TestContentServiceDelete_BlobFailureNeverBlocksRecordDelete(t *testing.T) {
	repo := newFakeCourseRepo()
	blob := &fakeBlob{deleteErr: errors.New("bucket unreachable")}
	svc := newCourseService(repo, blob)

	ref := "courses/doomed.jpg"
	repo.records[1] = &models.Course{ID: 1, Title: "Doomed", Asset: models.Asset{ImageRef: &ref}}

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestContentServiceDelete_MissingRecord(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := newCourseService(repo, &fakeBlob{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestContentService_AttachmentRejectedWithoutAssetSlot(t *testing.T) {
	repo := &fakeMessageRepo{records: map[int64]*models.Message{1: {ID: 1, Name: "A"}}}
	svc := NewContentService[models.Message](repo, nil, models.MessageDescriptor, zerolog.Nop())

	asset := fileHeader(t, "photo.jpg", "image/jpeg", "fake-image-bytes")

	_, err := svc.Create(context.Background(), map[string]any{
		"name": "A", "email": "a@b.test", "message": "hello",
	}, asset)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Update(context.Background(), 1, map[string]any{"name": "B"}, asset)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

// fakeMessageRepo covers the no-asset resource path.
type fakeMessageRepo struct {
	records map[int64]*models.Message
}

func (r *fakeMessageRepo) List(context.Context) ([]*models.Message, error) { return nil, nil }

func (r *fakeMessageRepo) GetByID(_ context.Context, id int64) (*models.Message, error) {
	m, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("message not found")
	}
	return m, nil
}

func (r *fakeMessageRepo) Insert(_ context.Context, fields map[string]any) (*models.Message, error) {
	return &models.Message{ID: 1}, nil
}

func (r *fakeMessageRepo) Update(_ context.Context, id int64, fields map[string]any) (*models.Message, error) {
	return r.records[id], nil
}

func (r *fakeMessageRepo) Delete(context.Context, int64) error { return nil }
