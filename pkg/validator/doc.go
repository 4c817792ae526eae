// Package validator provides composable validation rules with translatable
// error messages.
//
// Rules are plain values built by constructor functions and evaluated with
// Apply, which collects every failure into ValidationErrors:
//
//	err := validator.Apply(
//		validator.RequiredString("name", req.Name),
//		validator.MaxLenString("name", req.Name, 200),
//		validator.Any("contact", "provide a valid email or phone",
//			validator.EmailString("email", req.Email),
//			validator.MinDigits("phone", req.Phone, 7),
//		),
//	)
//
// Struct fields can also declare go-playground/validator tags, evaluated by
// ValidateStruct into the same ValidationErrors:
//
//	Name string `json:"name" validate:"notblank,max=200"`
//
// Each ValidationError carries a TranslationKey and TranslationValues so the
// default English Message can be replaced through Translate.
package validator
