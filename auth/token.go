package auth

import (
	"time"

	"geeksboard/config"
	"geeksboard/repository"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	MentorId int   `json:"mentor_id"`
	Exp      int64 `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return
	}
	if mentorId, ok := mapClaims["mentor_id"].(float64); ok {
		claims.MentorId = int(mentorId)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Exp = int64(exp)
	}
}

func (claims *Claims) Valid() error {
	if claims.MentorId == 0 {
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func CreateToken(mentor *repository.Mentor) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"mentor_id": mentor.Id,
			"exp":       time.Now().Add(time.Hour * 24 * 21).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}
