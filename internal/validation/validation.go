// Package validation 提供欄位驗證的純函式，並將其註冊為 go-playground/validator 的自訂規則。
package validation

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// CourseTimeLayout 課程時間欄位的固定格式
const CourseTimeLayout = "2006-01-02 15:04:05"

// IsUndefined 判斷選填欄位是否未提供 (JSON 缺欄位時指標為 nil)
func IsUndefined[T any](v *T) bool {
	return v == nil
}

// IsNotValidString 判斷字串去除前後空白後是否為空
func IsNotValidString(v string) bool {
	return strings.TrimSpace(v) == ""
}

// IsNotValidInteger 判斷整數是否為負數。
// 型別與整數性由 JSON 綁定保證：帶小數的數值綁定到 int 欄位會直接失敗。
func IsNotValidInteger(v int) bool {
	return v < 0
}

// AreValidDates 判斷兩個時間字串是否皆符合固定格式，且 start 嚴格早於 end
func AreValidDates(startAt, endAt string) bool {
	start, err := time.Parse(CourseTimeLayout, startAt)
	if err != nil {
		return false
	}
	end, err := time.Parse(CourseTimeLayout, endAt)
	if err != nil {
		return false
	}
	return start.Before(end)
}

// IsValidPassword 判斷密碼是否為 8 到 16 個字元，且同時包含數字、小寫與大寫英文字母。
// 長度限制套用在整個字串上，不是子字串。
func IsValidPassword(v string) bool {
	runes := []rune(v)
	if len(runes) < 8 || len(runes) > 16 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

// IsValidImageURL 判斷大頭貼網址是否為 https 且副檔名為 .jpg/.jpeg/.png
func IsValidImageURL(v string) bool {
	if !strings.HasPrefix(v, "https") {
		return false
	}
	lower := strings.ToLower(v)
	return strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") ||
		strings.HasSuffix(lower, ".png")
}

// IsValidHTTPSURL 判斷網址是否為 https 開頭
func IsValidHTTPSURL(v string) bool {
	return strings.HasPrefix(v, "https")
}

// Register 將自訂規則掛載到 validator 實例，供 DTO 的 validate tag 使用
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("coursetime", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(CourseTimeLayout, fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return IsValidImageURL(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("httpsurl", func(fl validator.FieldLevel) bool {
		return IsValidHTTPSURL(fl.Field().String())
	})
}
