package jwt

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/utils"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const defaultTokenExpiry = time.Hour

type (
	JWTService interface {
		GenerateTokenUser(email string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserEmailByToken(token string) (string, error)
		TokenExpiry() time.Duration
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey   string
		issuer      string
		tokenExpiry time.Duration
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func getTokenExpiry() time.Duration {
	hours, err := strconv.Atoi(utils.GetConfig("TOKEN_EXPIRY_HOURS"))
	if err != nil || hours == 0 {
		return defaultTokenExpiry
	}
	return time.Duration(hours) * time.Hour
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey:   getSecretKey(),
		issuer:      "FOOD-EXPIRY-TRACKER",
		tokenExpiry: getTokenExpiry(),
	}
}

func (j *jwtService) TokenExpiry() time.Duration {
	return j.tokenExpiry
}

func (j *jwtService) GenerateTokenUser(email string) (string, error) {
	if j.secretKey == "" {
		return "", domain.ErrMissingSecret
	}

	claims := jwtUserClaim{
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenExpiry)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (interface{}, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserEmailByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.Email, nil
}
