package config

import (
	"fmt"
	"strconv"

	db "bitbucket.org/rutaandina/backend/db"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Configuration struct {
	JWTSecret   string `env:"JWT_SECRET,required"`
	Port        int    `env:"PORT,default=3001"`
	Timeout     int    `env:"TIMEOUT,default=1"`
	DB          db.Storage
	SQL         database
	AwsSMTP     awsSMTP
	AwsS3       awsS3
	Mail        mail
	Environment string `env:"ENVIRONMENT,default=development"`
	AppName     string `env:"APP_NAME,default=tours-backend"`

	BackofficeBaseURL             string `env:"BACKOFFICE_BASE_URL"`
	BackofficePasswordRecoverPath string `env:"BACKOFFICE_PASSWORD_RECOVER_PATH,default=/password-recover"`
}

type database struct {
	URL            string `env:"DATA_BASE_URL,required"`
	Name           string `env:"DATA_BASE_NAME,required"`
	User           string `env:"DATA_BASE_USER,required"`
	Port           int    `env:"DATA_BASE_PORT,default=3306"`
	Password       string `env:"DATA_BASE_PASSWORD,required"`
	OpenConnection int    `env:"DATA_BASE_MAX_OPEN_CONNECTION,default=5"`
}

type awsSMTP struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

type awsS3 struct {
	S3Region      string `env:"S3_REGION"`
	S3Bucket      string `env:"S3_BUCKET"`
	S3Url         string `env:"S3_URL"`
	S3PathReceipt string `env:"S3_PATH_RECEIPT,default=receipt"`
}

type mail struct {
	PasswordRecover mailPasswordRecover
	NameFrom        string `env:"MAIL_NAME_FROM"`
	EmailFrom       string `env:"MAIL_EMAIL_FROM"`
	Folder          string `env:"MAIL_FOLDER"`
	Path            string `env:"MAIL_PATH"`
}

type mailPasswordRecover struct {
	Subject  string `env:"MAIL_PASSWORD_RECOVER_SUBJECT"`
	Template string `env:"MAIL_PASSWORD_RECOVER_TEMPLATE"`
}

type AppContext struct {
	Config  Configuration
	SQLConn *sqlx.DB
	DB      db.Storage
	AwsSMTP *gomail.Dialer
	AwsS3   *session.Session
}

func CreateConnectionSQL(conf database) (*sqlx.DB, error) {
	conn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", conf.User, conf.Password, conf.URL, strconv.Itoa(conf.Port), conf.Name)
	connection, err := sqlx.Connect("mysql", conn)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

func CreateNewConnectionSMTP(conf awsSMTP) *gomail.Dialer {
	return gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.SMTPUser, conf.SMTPPassword)
}

func CreateNewSessionS3(conf awsS3) (*session.Session, error) {
	return session.NewSession(&aws.Config{Region: aws.String(conf.S3Region)})
}

var logger *log.Entry

func SetLogger(newLogger *log.Entry) {
	logger = newLogger
}

// GetLogger returns the request-scoped logger bound by the logging
// middleware, or a bare entry when none is bound yet.
func GetLogger() *log.Entry {
	if logger == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return logger
}
