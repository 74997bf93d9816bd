package sms

import (
	"fmt"

	"azring_to_go/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v5/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// Enabled 是否配置了短信通知
func Enabled(cfg config.SMSConfig) bool {
	return cfg.AccessKeyID != "" && cfg.AccessKeySecret != "" && cfg.TemplateCode != ""
}

// CreateClient 创建短信客户端，凭证来自配置
func CreateClient(cfg config.SMSConfig) (*dysmsapi20170525.Client, error) {
	clientConfig := &openapi.Config{
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	}
	// Endpoint 请参考 https://api.aliyun.com/product/Dysmsapi
	clientConfig.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	return dysmsapi20170525.NewClient(clientConfig)
}

// SendPrizeNotice 发送中奖通知短信
func SendPrizeNotice(cfg config.SMSConfig, phoneNumber string, prizeName string) error {
	client, err := CreateClient(cfg)
	if err != nil {
		return fmt.Errorf("创建客户端失败: %v", err)
	}

	sendSmsRequest := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(phoneNumber),
		SignName:      tea.String(cfg.SignName),
		TemplateCode:  tea.String(cfg.TemplateCode),
		TemplateParam: tea.String(fmt.Sprintf("{\"prize\":\"%s\"}", prizeName)),
	}
	runtime := &util.RuntimeOptions{}

	if _, err := client.SendSmsWithOptions(sendSmsRequest, runtime); err != nil {
		sdkErr := &tea.SDKError{}
		if _t, ok := err.(*tea.SDKError); ok {
			sdkErr = _t
		} else {
			sdkErr.Message = tea.String(err.Error())
		}
		return fmt.Errorf("发送短信失败: %s", tea.StringValue(sdkErr.Message))
	}
	return nil
}
