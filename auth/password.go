package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost bcrypt 计算强度
const PasswordCost = 10

// ErrPasswordTooLong 明文超过 bcrypt 的 72 字节上限
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// HashPassword 生成密码哈希
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 校验明文密码与哈希是否匹配
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
