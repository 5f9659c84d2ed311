package jwt

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenOperator(operatorID string, role string) string
		ValidateTokenOperator(token string) (*jwt.Token, error)
		GetOperatorIDByToken(token string) (string, string, error)
	}

	jwtOperatorClaim struct {
		OperatorID string `json:"operator_id"`
		Role       string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "PETOPIA",
	}
}

func (j *jwtService) GenerateTokenOperator(operatorID string, role string) string {
	claims := jwtOperatorClaim{
		operatorID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 8)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenOperator(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtOperatorClaim{}, j.parseToken)
}

func (j *jwtService) GetOperatorIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenOperator(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtOperatorClaim)

	id := fmt.Sprintf("%v", claims.OperatorID)
	role := fmt.Sprintf("%v", claims.Role)
	return id, role, nil
}
