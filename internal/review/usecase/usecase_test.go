package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/review"
)

// fakeRepo mirrors the SQL semantics in memory: ratings upsert into the
// user's earliest review row for the product, comments always append.
type fakeRepo struct {
	reviews []model.Review
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) CreateComment(_ context.Context, rev *model.Review) error {
	rev.ID = f.nextID
	f.nextID++
	f.reviews = append(f.reviews, *rev)
	return nil
}

func (f *fakeRepo) ListComments(_ context.Context, productID int64) ([]model.Review, error) {
	var out []model.Review
	for _, r := range f.reviews {
		if r.ProductID == productID && r.Comment != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, productID, reviewID int64) (*model.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == reviewID && f.reviews[i].ProductID == productID {
			r := f.reviews[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) DeleteComment(_ context.Context, id int64) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) UpsertRating(_ context.Context, productID, userID int64, rating int, at time.Time) error {
	for i := range f.reviews {
		if f.reviews[i].ProductID == productID && f.reviews[i].UserID == userID {
			f.reviews[i].Rating = &rating
			f.reviews[i].CreatedAt = at
			return nil
		}
	}
	f.reviews = append(f.reviews, model.Review{
		ID:        f.nextID,
		ProductID: productID,
		UserID:    userID,
		Rating:    &rating,
		CreatedAt: at,
	})
	f.nextID++
	return nil
}

func (f *fakeRepo) RatingsForProduct(_ context.Context, productID int64) ([]int, error) {
	var out []int
	for _, r := range f.reviews {
		if r.ProductID == productID && r.Rating != nil {
			out = append(out, *r.Rating)
		}
	}
	return out, nil
}

func newUseCase(repo review.Repository) review.UseCase {
	return NewReviewUseCase(repo, zap.NewNop())
}

func TestSubmitRatingRejectsOutOfRange(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1, 100} {
		err := uc.SubmitRating(ctx, 1, 1, rating)
		assert.ErrorIs(t, err, review.ErrInvalidRating, "rating %d", rating)
	}

	// No side effect: the aggregate stays empty.
	agg, err := uc.GetAggregate(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, agg.Average)
	assert.Equal(t, 0, agg.Count)
}

func TestAggregateEmptyProduct(t *testing.T) {
	uc := newUseCase(newFakeRepo())

	agg, err := uc.GetAggregate(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, agg.Average)
	assert.Equal(t, 0, agg.Count)
}

func TestAggregateAveragesAcrossUsers(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.SubmitRating(ctx, 1, 1, 4))
	require.NoError(t, uc.SubmitRating(ctx, 1, 2, 5))

	agg, err := uc.GetAggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg.Average)
	assert.Equal(t, 4.5, *agg.Average)
	assert.Equal(t, 2, agg.Count)
}

func TestResubmitReplacesInsteadOfAppending(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.SubmitRating(ctx, 1, 1, 4))
	require.NoError(t, uc.SubmitRating(ctx, 1, 1, 2))

	agg, err := uc.GetAggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg.Average)
	assert.Equal(t, 2.0, *agg.Average)
	assert.Equal(t, 1, agg.Count, "one user contributes exactly once")
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	// 4 + 4 + 5 = 13 / 3 = 4.333... -> 4.3
	require.NoError(t, uc.SubmitRating(ctx, 1, 1, 4))
	require.NoError(t, uc.SubmitRating(ctx, 1, 2, 4))
	require.NoError(t, uc.SubmitRating(ctx, 1, 3, 5))

	agg, err := uc.GetAggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg.Average)
	assert.Equal(t, 4.3, *agg.Average)
	assert.Equal(t, 3, agg.Count)
}

func TestRatingLandsOnExistingCommentRow(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.AddComment(ctx, 1, 1, "great board")
	require.NoError(t, err)
	require.NoError(t, uc.SubmitRating(ctx, 1, 1, 5))

	// The rating merged into the comment row: still one row, comment intact.
	require.Len(t, repo.reviews, 1)
	require.NotNil(t, repo.reviews[0].Comment)
	assert.Equal(t, "great board", *repo.reviews[0].Comment)
	require.NotNil(t, repo.reviews[0].Rating)
	assert.Equal(t, 5, *repo.reviews[0].Rating)

	comments, err := uc.ListComments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestPureCommentRowsDoNotCountAsRatings(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.AddComment(ctx, 1, 1, "no rating attached")
	require.NoError(t, err)
	require.NoError(t, uc.SubmitRating(ctx, 1, 2, 3))

	agg, err := uc.GetAggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg.Average)
	assert.Equal(t, 3.0, *agg.Average)
	assert.Equal(t, 1, agg.Count)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	rev, err := uc.AddComment(ctx, 1, 1, "mine")
	require.NoError(t, err)

	err = uc.DeleteComment(ctx, 1, rev.ID, 2)
	assert.ErrorIs(t, err, review.ErrNotOwner)

	err = uc.DeleteComment(ctx, 1, rev.ID, 1)
	require.NoError(t, err)

	comments, err := uc.ListComments(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteCommentNotFound(t *testing.T) {
	uc := newUseCase(newFakeRepo())

	err := uc.DeleteComment(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, review.ErrNotFound)
}
