// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"pharma_backend/internal/feature/auth/domain"
	"pharma_backend/internal/feature/auth/domain/entity"
	"pharma_backend/internal/feature/auth/usecase"
)

// userGorm はUserRepositoryインターフェースのgorm実装です。
// Postgresを想定していますが、開発用のSQLiteでも動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加します。
// メールアドレスのユニーク制約に違反した場合、domain.ErrEmailAlreadyExistsを返します。
// 事前の存在チェックと挿入の間のレースはこのマッピングで塞がれます。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation はユニーク制約違反かどうかをドライバ横断で判定します。
func isUniqueViolation(err error) bool {
	// Postgresエラー23505: ユニーク制約違反
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// gorm共通の重複キーエラー（SQLiteドライバはこちらに正規化される）
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLiteの生エラーメッセージへのフォールバック
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
