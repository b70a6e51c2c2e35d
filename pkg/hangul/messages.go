package hangul

// Default (Korean) messages. The matching translation keys resolve against
// the hangul section of the translation files.
const (
	MsgEncoding = "올바르지 않은 문자 인코딩입니다."

	MsgNameRequired = "이름을 입력해주세요."
	MsgNameFormat   = "이름은 한글만 입력 가능합니다."
	MsgNameLength   = "이름은 2자 이상 10자 이하로 입력해주세요."

	MsgPhoneLength = "전화번호는 11자리 숫자여야 합니다."
	MsgPhonePrefix = "휴대폰 번호는 010으로 시작해야 합니다."

	MsgAddressFormat = "주소에는 한글, 숫자, 공백, 하이픈, 쉼표, 괄호만 입력 가능합니다."
	MsgAddressLength = "주소는 200자 이하로 입력해주세요."

	MsgTextRequired = "내용을 입력해주세요."
	MsgTextFormat   = "허용되지 않는 문자가 포함되어 있습니다."
	MsgTextLength   = "%d자 이하로 입력해주세요." // formatted with the limit

	MsgEmailFormat = "올바른 이메일 형식이 아닙니다."
	MsgEmailLength = "이메일은 100자 이하로 입력해주세요."

	MsgSchoolFormat = "학교명은 한글, 영문, 숫자만 입력 가능합니다."
	MsgSchoolLength = "학교명은 50자 이하로 입력해주세요."
)

const (
	KeyEncoding = "hangul.encoding"

	KeyNameRequired = "hangul.name.required"
	KeyNameFormat   = "hangul.name.format"
	KeyNameLength   = "hangul.name.length"

	KeyPhoneLength = "hangul.phone.length"
	KeyPhonePrefix = "hangul.phone.prefix"

	KeyAddressFormat = "hangul.address.format"
	KeyAddressLength = "hangul.address.length"

	KeyTextRequired = "hangul.text.required"
	KeyTextFormat   = "hangul.text.format"
	KeyTextLength   = "hangul.text.length"

	KeyEmailFormat = "hangul.email.format"
	KeyEmailLength = "hangul.email.length"

	KeySchoolFormat = "hangul.school.format"
	KeySchoolLength = "hangul.school.length"
)
