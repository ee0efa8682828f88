package wire

import (
	"fmt"
	"strconv"
)

// ContentFormat is a registered Content-Format identifier.
type ContentFormat uint16

const (
	TextPlain                              ContentFormat = 0
	ApplicationCoseEncrypt0                ContentFormat = 16
	ApplicationCoseMac0                    ContentFormat = 17
	ApplicationCoseSign1                   ContentFormat = 18
	ApplicationAceCBOR                     ContentFormat = 19
	ImageGIF                               ContentFormat = 21
	ImageJPEG                              ContentFormat = 22
	ImagePNG                               ContentFormat = 23
	ApplicationLinkFormat                  ContentFormat = 40
	ApplicationXML                         ContentFormat = 41
	ApplicationOctetStream                 ContentFormat = 42
	ApplicationEXI                         ContentFormat = 47
	ApplicationJSON                        ContentFormat = 50
	ApplicationJSONPatchJSON               ContentFormat = 51
	ApplicationMergePatchJSON              ContentFormat = 52
	ApplicationCBOR                        ContentFormat = 60
	ApplicationCWT                         ContentFormat = 61
	ApplicationMultipartCore               ContentFormat = 62
	ApplicationCBORSeq                     ContentFormat = 63
	ApplicationCoseEncrypt                 ContentFormat = 96
	ApplicationCoseMac                     ContentFormat = 97
	ApplicationCoseSign                    ContentFormat = 98
	ApplicationCoseKey                     ContentFormat = 101
	ApplicationCoseKeySet                  ContentFormat = 102
	ApplicationSenMLJSON                   ContentFormat = 110
	ApplicationSensMLJSON                  ContentFormat = 111
	ApplicationSenMLCBOR                   ContentFormat = 112
	ApplicationSensMLCBOR                  ContentFormat = 113
	ApplicationSenMLEXI                    ContentFormat = 114
	ApplicationSensMLEXI                   ContentFormat = 115
	ApplicationYangDataCBORSid             ContentFormat = 140
	ApplicationCoapGroupJSON               ContentFormat = 256
	ApplicationDotsCBOR                    ContentFormat = 271
	ApplicationMissingBlocksCBORSeq        ContentFormat = 272
	ApplicationPKCS7MimeServerGeneratedKey ContentFormat = 280
	ApplicationPKCS7MimeCertsOnly          ContentFormat = 281
	ApplicationPKCS8                       ContentFormat = 284
	ApplicationCSRAttrs                    ContentFormat = 285
	ApplicationPKCS10                      ContentFormat = 286
	ApplicationPKIXCert                    ContentFormat = 287
	ApplicationAifCBOR                     ContentFormat = 290
	ApplicationAifJSON                     ContentFormat = 291
	ApplicationSenMLXML                    ContentFormat = 310
	ApplicationSensMLXML                   ContentFormat = 311
	ApplicationSenMLEtchJSON               ContentFormat = 320
	ApplicationSenMLEtchCBOR               ContentFormat = 322
	ApplicationYangDataCBOR                ContentFormat = 340
	ApplicationYangDataCBORName            ContentFormat = 341
	ApplicationTdJSON                      ContentFormat = 432
	ApplicationVoucherCoseCBOR             ContentFormat = 836
	ApplicationVndOcfCBOR                  ContentFormat = 10000
	ApplicationOSCORE                      ContentFormat = 10001
	ApplicationJavascript                  ContentFormat = 10002
	ApplicationJSONDeflate                 ContentFormat = 11050
	ApplicationCBORDeflate                 ContentFormat = 11060
	ApplicationVndOmaLwm2mTLV              ContentFormat = 11542
	ApplicationVndOmaLwm2mJSON             ContentFormat = 11543
	ApplicationVndOmaLwm2mCBOR             ContentFormat = 11544
	TextCSS                                ContentFormat = 20000
	ImageSVGXML                            ContentFormat = 30000
)

var contentFormatNames = map[ContentFormat]string{
	TextPlain:                              "text/plain; charset=utf-8",
	ApplicationCoseEncrypt0:                "application/cose; cose-type=\"cose-encrypt0\"",
	ApplicationCoseMac0:                    "application/cose; cose-type=\"cose-mac0\"",
	ApplicationCoseSign1:                   "application/cose; cose-type=\"cose-sign1\"",
	ApplicationAceCBOR:                     "application/ace+cbor",
	ImageGIF:                               "image/gif",
	ImageJPEG:                              "image/jpeg",
	ImagePNG:                               "image/png",
	ApplicationLinkFormat:                  "application/link-format",
	ApplicationXML:                         "application/xml",
	ApplicationOctetStream:                 "application/octet-stream",
	ApplicationEXI:                         "application/exi",
	ApplicationJSON:                        "application/json",
	ApplicationJSONPatchJSON:               "application/json-patch+json",
	ApplicationMergePatchJSON:              "application/merge-patch+json",
	ApplicationCBOR:                        "application/cbor",
	ApplicationCWT:                         "application/cwt",
	ApplicationMultipartCore:               "application/multipart-core",
	ApplicationCBORSeq:                     "application/cbor-seq",
	ApplicationCoseEncrypt:                 "application/cose; cose-type=\"cose-encrypt\"",
	ApplicationCoseMac:                     "application/cose; cose-type=\"cose-mac\"",
	ApplicationCoseSign:                    "application/cose; cose-type=\"cose-sign\"",
	ApplicationCoseKey:                     "application/cose-key",
	ApplicationCoseKeySet:                  "application/cose-key-set",
	ApplicationSenMLJSON:                   "application/senml+json",
	ApplicationSensMLJSON:                  "application/sensml+json",
	ApplicationSenMLCBOR:                   "application/senml+cbor",
	ApplicationSensMLCBOR:                  "application/sensml+cbor",
	ApplicationSenMLEXI:                    "application/senml-exi",
	ApplicationSensMLEXI:                   "application/sensml-exi",
	ApplicationYangDataCBORSid:             "application/yang-data+cbor; id=sid",
	ApplicationCoapGroupJSON:               "application/coap-group+json",
	ApplicationDotsCBOR:                    "application/dots+cbor",
	ApplicationMissingBlocksCBORSeq:        "application/missing-blocks+cbor-seq",
	ApplicationPKCS7MimeServerGeneratedKey: "application/pkcs7-mime; smime-type=server-generated-key",
	ApplicationPKCS7MimeCertsOnly:          "application/pkcs7-mime; smime-type=certs-only",
	ApplicationPKCS8:                       "application/pkcs8",
	ApplicationCSRAttrs:                    "application/csrattrs",
	ApplicationPKCS10:                      "application/pkcs10",
	ApplicationPKIXCert:                    "application/pkix-cert",
	ApplicationAifCBOR:                     "application/aif+cbor",
	ApplicationAifJSON:                     "application/aif+json",
	ApplicationSenMLXML:                    "application/senml+xml",
	ApplicationSensMLXML:                   "application/sensml+xml",
	ApplicationSenMLEtchJSON:               "application/senml-etch+json",
	ApplicationSenMLEtchCBOR:               "application/senml-etch+cbor",
	ApplicationYangDataCBOR:                "application/yang-data+cbor",
	ApplicationYangDataCBORName:            "application/yang-data+cbor; id=name",
	ApplicationTdJSON:                      "application/td+json",
	ApplicationVoucherCoseCBOR:             "application/voucher-cose+cbor",
	ApplicationVndOcfCBOR:                  "application/vnd.ocf+cbor",
	ApplicationOSCORE:                      "application/oscore",
	ApplicationJavascript:                  "application/javascript",
	ApplicationJSONDeflate:                 "application/json; deflate",
	ApplicationCBORDeflate:                 "application/cbor; deflate",
	ApplicationVndOmaLwm2mTLV:              "application/vnd.oma.lwm2m+tlv",
	ApplicationVndOmaLwm2mJSON:             "application/vnd.oma.lwm2m+json",
	ApplicationVndOmaLwm2mCBOR:             "application/vnd.oma.lwm2m+cbor",
	TextCSS:                                "text/css",
	ImageSVGXML:                            "image/svg+xml",
}

// String returns the media type, or "ContentFormat(n)" if unregistered.
func (f ContentFormat) String() string {
	if name, ok := contentFormatNames[f]; ok {
		return name
	}
	return "ContentFormat(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// IsRegistered returns true if f is a registered content format.
func (f ContentFormat) IsRegistered() bool {
	_, ok := contentFormatNames[f]
	return ok
}

// LookupContentFormat returns the registered content format for v.
func LookupContentFormat(v uint16) (ContentFormat, error) {
	f := ContentFormat(v)
	if !f.IsRegistered() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidContentFormat, v)
	}
	return f, nil
}
