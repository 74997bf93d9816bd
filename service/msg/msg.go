package msg

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
	zh_translation "github.com/go-playground/validator/v10/translations/zh"
)

var trans ut.Translator

// InitTranslator 初始化参数校验错误的翻译器，main启动时调用一次
func InitTranslator(language string) error {
	//转换成go-playground的validator
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	//创建翻译器
	zhT := zh.New()
	enT := en.New()

	//创建通用翻译器
	//第一个参数是备用语言，后面的是应当支持的语言
	uni := ut.New(enT, enT, zhT)

	trans, ok = uni.GetTranslator(language)
	if !ok {
		return fmt.Errorf("not found translator %s", language)
	}

	//绑定到gin的验证器上，对binding的tag进行翻译
	switch language {
	case "zh":
		return zh_translation.RegisterDefaultTranslations(validate, trans)
	default:
		return en_translation.RegisterDefaultTranslations(validate, trans)
	}
}

// TranslateError 将binding校验错误翻译为可读的字段错误信息
// 非校验类错误返回原始错误文本
func TranslateError(err error) any {
	if err == nil {
		return ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && trans != nil {
		return removePrefix(verrs.Translate(trans))
	}
	return err.Error()
}

// removePrefix 去掉字段错误key中的结构体名前缀
func removePrefix(errors map[string]string) map[string]string {
	result := map[string]string{}
	for key, value := range errors {
		result[key[strings.Index(key, ".")+1:]] = value
	}
	return result
}
