package middlewares

var Responses = struct {
	FailedValidations    *NewRM
	InternalServerError  *NewRM
	UserNotFound         *NewRM
	InvalidRoles         *NewRM
	EmailAlreadyTaken    *NewRM
	DriverNotFound       *NewRM
	TourGuideNotFound    *NewRM
	PaymentNotFound      *NewRM
	TourRequestNotFound  *NewRM
	TourRequestCancelled *NewRM
}{
	FailedValidations: &NewRM{
		Language.English: "Failed field validations",
		Language.Spanish: "Las validaciones de los campos fallaron",
	},
	InternalServerError: &NewRM{
		Language.English: "Internal server error",
		Language.Spanish: "Problemas con el servidor",
	},
	UserNotFound: &NewRM{
		Language.English: "User not found",
		Language.Spanish: "No se encontró el usuario",
	},
	InvalidRoles: &NewRM{
		Language.English: "Invalid roles",
		Language.Spanish: "No tienes permiso para realizar esta acción",
	},
	EmailAlreadyTaken: &NewRM{
		Language.English: "Email already taken",
		Language.Spanish: "El email ya está registrado",
	},
	DriverNotFound: &NewRM{
		Language.English: "Driver not found",
		Language.Spanish: "No se encontró el conductor",
	},
	TourGuideNotFound: &NewRM{
		Language.English: "Tour guide not found",
		Language.Spanish: "No se encontró el guía",
	},
	PaymentNotFound: &NewRM{
		Language.English: "Payment not found",
		Language.Spanish: "No se encontró el pago",
	},
	TourRequestNotFound: &NewRM{
		Language.English: "Tour request not found",
		Language.Spanish: "No se encontró la solicitud",
	},
	TourRequestCancelled: &NewRM{
		Language.English: "Tour request already cancelled",
		Language.Spanish: "La solicitud ya fue cancelada",
	},
}

type NewRM map[string]string

var Language = struct {
	English string
	Spanish string
}{
	English: "en",
	Spanish: "es",
}

var LanguageMap = map[string]string{
	Language.Spanish: "Spanish",
	Language.English: "English",
}
