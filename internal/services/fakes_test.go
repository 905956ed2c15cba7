package services

import (
	"context"
	"sync"
	"time"

	"jobswipe_backend/internal/models"
	"jobswipe_backend/internal/repositories"

	"github.com/google/uuid"
)

// Фейки репозиториев в памяти. Подмена хранилища возможна благодаря
// интерфейсам и явной инъекции зависимостей.

// --- UserRepository ---

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*models.User
	tokens    map[string]*models.RefreshToken
	forcedErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) addUser(u *models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByPhone(phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetOrCreateByPhone(phone string) (*models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, false, r.forcedErr
	}
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return u, false, nil
		}
	}
	u := r.addUser(&models.User{PhoneNumber: phone})
	return u, true, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return rt, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeUserRepo) CleanExpiredRefreshTokens() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for k, rt := range r.tokens {
		if now.After(rt.ExpiresAt) {
			delete(r.tokens, k)
		}
	}
	return nil
}

// --- ProfileRepository ---

type fakeProfileRepo struct {
	mu        sync.Mutex
	userRepo  *fakeUserRepo
	profiles  []*models.WorkerProfile
	postings  []*models.JobPosting
	forcedErr error
}

func newFakeProfileRepo(userRepo *fakeUserRepo) *fakeProfileRepo {
	return &fakeProfileRepo{userRepo: userRepo}
}

func (r *fakeProfileRepo) CreateWorkerProfile(profile *models.WorkerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	r.profiles = append(r.profiles, profile)

	// Флаги ролей — та же "транзакция", что и в GORM-реализации
	if u, ok := r.userRepo.users[profile.UserID]; ok {
		u.HasWorkerProfile = true
		u.DisplayName = profile.FullName
	}
	return nil
}

func (r *fakeProfileRepo) CreateJobPosting(posting *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	if posting.ID == "" {
		posting.ID = uuid.NewString()
	}
	posting.CreatedAt = time.Now()
	posting.UpdatedAt = posting.CreatedAt
	r.postings = append(r.postings, posting)

	if u, ok := r.userRepo.users[posting.UserID]; ok {
		u.HasEmployerProfile = true
		u.DisplayName = posting.CompanyName
	}
	return nil
}

func (r *fakeProfileRepo) FindWorkerProfileByID(ownerID, profileID string) (*models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	for _, p := range r.profiles {
		if p.ID == profileID && p.UserID == ownerID {
			return p, nil
		}
	}
	return nil, repositories.ErrWorkerProfileNotFound
}

func (r *fakeProfileRepo) FindJobPostingByID(ownerID, postingID string) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	for _, p := range r.postings {
		if p.ID == postingID && p.UserID == ownerID {
			return p, nil
		}
	}
	return nil, repositories.ErrJobPostingNotFound
}

func (r *fakeProfileRepo) FindWorkerProfilesByUserID(userID string) ([]models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.WorkerProfile
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) FindJobPostingsByUserID(userID string) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.JobPosting
	for _, p := range r.postings {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) FindAllWorkerProfiles() ([]models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	out := make([]models.WorkerProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) FindAllJobPostings() ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	out := make([]models.JobPosting, 0, len(r.postings))
	for _, p := range r.postings {
		out = append(out, *p)
	}
	return out, nil
}

// --- SwipeRepository ---

// fakeSwipeRepo хранит свайпы слайсом, чтобы сохранять порядок вставки —
// он важен для дедупликации "первое вхождение побеждает".
type fakeSwipeRepo struct {
	mu               sync.Mutex
	swipes           []*models.Swipe
	notificationRepo *fakeNotificationRepo
	forcedErr        error
}

func newFakeSwipeRepo(notificationRepo *fakeNotificationRepo) *fakeSwipeRepo {
	return &fakeSwipeRepo{notificationRepo: notificationRepo}
}

func (r *fakeSwipeRepo) upsertLocked(swipe *models.Swipe) {
	for i, s := range r.swipes {
		if s.SwiperUserID == swipe.SwiperUserID && s.SwipedItemID == swipe.SwipedItemID {
			swipe.CreatedAt = s.CreatedAt
			swipe.UpdatedAt = time.Now()
			r.swipes[i] = swipe
			return
		}
	}
	swipe.CreatedAt = time.Now()
	swipe.UpdatedAt = swipe.CreatedAt
	r.swipes = append(r.swipes, swipe)
}

func (r *fakeSwipeRepo) Upsert(swipe *models.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	r.upsertLocked(swipe)
	return nil
}

func (r *fakeSwipeRepo) RecordRightAndDetectMatch(swipe *models.Swipe) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return false, r.forcedErr
	}

	swipe.Direction = models.SwipeDirectionRight
	swipe.Status = models.SwipeStatusPending
	r.upsertLocked(swipe)

	matched := false
	for _, s := range r.swipes {
		if s.SwiperUserID == swipe.SwipedItemOwnerID &&
			s.SwipedItemOwnerID == swipe.SwiperUserID &&
			s.Direction == models.SwipeDirectionRight {
			s.Status = models.SwipeStatusMatched
			matched = true
		}
	}

	if matched {
		swipe.Status = models.SwipeStatusMatched
		r.notificationRepo.add(&models.Notification{
			UserID:   swipe.SwipedItemOwnerID,
			SenderID: swipe.SwiperUserID,
			Type:     repositories.NotificationTypeNewMatch,
		})
	}

	return matched, nil
}

func (r *fakeSwipeRepo) FindByKey(swiperID, itemID string) (*models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.swipes {
		if s.SwiperUserID == swiperID && s.SwipedItemID == itemID {
			return s, nil
		}
	}
	return nil, repositories.ErrSwipeNotFound
}

func (r *fakeSwipeRepo) FindBySwiper(swiperID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.SwiperUserID == swiperID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwipeRepo) FindRightBySwiper(swiperID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.SwiperUserID == swiperID && s.Direction == models.SwipeDirectionRight {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwipeRepo) FindRightByItemOwner(ownerID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.SwipedItemOwnerID == ownerID && s.Direction == models.SwipeDirectionRight {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSwipeRepo) FindMatchedBySwiper(swiperID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.SwiperUserID == swiperID && s.Status == models.SwipeStatusMatched {
			out = append(out, *s)
		}
	}
	return out, nil
}

// --- NotificationRepository ---

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
	forcedErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) add(n *models.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, n)
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	r.add(n)
	return nil
}

func (r *fakeNotificationRepo) FindUserNotifications(userID string, limit, offset int) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, 0, r.forcedErr
	}
	var all []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			all = append(all, *n)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return 0, r.forcedErr
	}
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(userID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.IsRead = true
			now := time.Now()
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

// --- SkillRepository ---

type fakeSkillRepo struct {
	names     []string
	forcedErr error
}

func (r *fakeSkillRepo) FindAllOrdered() ([]models.Skill, error) {
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	out := make([]models.Skill, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, models.Skill{Name: n})
	}
	return out, nil
}

func (r *fakeSkillRepo) SeedDefaults(names []string) error {
	r.names = append(r.names, names...)
	return nil
}

// --- Провайдеры ---

type fakeSMSProvider struct {
	mu    sync.Mutex
	sent  []string // телефоны
	codes map[string]string
	err   error
}

func newFakeSMSProvider() *fakeSMSProvider {
	return &fakeSMSProvider{codes: make(map[string]string)}
}

func (p *fakeSMSProvider) SendOTP(_ context.Context, phone, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, phone)
	p.codes[phone] = code
	return nil
}

func (p *fakeSMSProvider) lastCode(phone string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.codes[phone]
}

type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []string // адреса получателей
}

func (p *fakeEmailProvider) Send(to, _, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return nil
}

func (p *fakeEmailProvider) SendMatchNotification(to, _ string) error {
	return p.Send(to, "", "")
}
