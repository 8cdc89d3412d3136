// Package testfixtures holds real, openssl-generated X.509 certificates
// and a CRL used across this module's test suites, grounded in the same
// "embed a real captured certificate as a PEM constant" style the
// teacher's own cert_test.go uses for its www.google.com fixture.
package testfixtures

const RootCAPEM = `-----BEGIN CERTIFICATE-----
MIIDKzCCAhOgAwIBAgIUGvtCux1rtxtmXtHlhsisPM3x4qcwDQYJKoZIhvcNAQEL
BQAwHTEbMBkGA1UEAwwSVHJhaWwgVGVzdCBSb290IENBMB4XDTI2MDgwNjA4MDYz
MFoXDTM2MDgwMzA4MDYzMFowHTEbMBkGA1UEAwwSVHJhaWwgVGVzdCBSb290IENB
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEA00UgRQ95Jt+c7tp76JHx
5xrTHh1JWTfRgmgZIZFZTUWrtchi+KctrnDNuvEoXsj3F1Ks6wxBkF55SDigA1Ar
U72nCbb/l6lSHrnLP8TuyOMS/cWMxYqUnc2F61j/CZwvGVFnSSm0BCDhlrUhJ+jQ
xFr3fVVn4MR0G5aMZY8p1jKs7HJ+P2MxxN6Fx562SWGX435PzP25ZO9PiQ5Dt1eb
7iZNef0WLT4ktQjoBd6XWODzvGNUfne4YfvktT4LgAQEccEIRWu8n9sHNyB5WA5h
rpvzSx4ix1JTE58j6pj8ZW9WLSGrikdg4YCRemOu3f7RQRCNwWcvFacIgBrOmCsX
FQIDAQABo2MwYTAdBgNVHQ4EFgQU3Ln/AZKirJydho3Mtess9jXPfWgwHwYDVR0j
BBgwFoAU3Ln/AZKirJydho3Mtess9jXPfWgwDwYDVR0TAQH/BAUwAwEB/zAOBgNV
HQ8BAf8EBAMCAQYwDQYJKoZIhvcNAQELBQADggEBABpN6ohORPeZ69A/CulRybBC
XwGRkpuqVwAQLLFSXdUIOh6AJNlJCxvEooImNV82Bf5E2YHJHUuJF5/BUnwqlfiU
HfwD6oQE4n7J1Xk/s1BL02/41ZGMZR3WKepplt2Qv6aF8iGM0pinmHhDSPjkN6f9
M1096ZPIYyAwd1+nNq36hDR0qpjXjTYq6Z4bUwoI/dCU3PgJMdaV+k4UY4zLMFgi
AiOoyv0PjnfYwuEK8KtOiYXbp5E75P9XOZcdClhTjvqYu3YfiIK72yWCIHG3qSIG
oNJ9G2Wr2ZCxbvSdt4J40MK1Bo3n6CChZYQOr7HnZCh6B5UL/lrJY5/kABlYQNk=
-----END CERTIFICATE-----
`

const IntermediateCAPEM = `-----BEGIN CERTIFICATE-----
MIIDNjCCAh6gAwIBAgIUAKBSTL/wbWR8DpNDl2QfVU7ZLbYwDQYJKoZIhvcNAQEL
BQAwHTEbMBkGA1UEAwwSVHJhaWwgVGVzdCBSb290IENBMB4XDTI2MDgwNjA4MDYz
MVoXDTMxMDgwNTA4MDYzMVowJTEjMCEGA1UEAwwaVHJhaWwgVGVzdCBJbnRlcm1l
ZGlhdGUgQ0EwggEiMA0GCSqGSIb3DQEBAQUAA4IBDwAwggEKAoIBAQDBj5g+vRGE
FV/0fTV0rN555zURp6yckCHW/nxSoYhvSlxzRWNZak+lzKs0CZxS1jEcL0eM726E
uGFqTvPqWmYc2c9Q6UEqwNIEdPEL5wnrvV+U5AqzzANaGKA3im31DgngwUWhKx2p
nlbu+BUHxab7OpswYLeueNv2o9bGcFi+QprwgWt2RxvXfy6tgzdPeRQRpkbdG89L
Q47pWhUWjKc1DVD/2fdrfvdTzOEI+KrxM/Mb3+Kk4hMZ+31/mk4llKWsb5yz4m9S
zp/ncD3LD2VThvvxGNSeiTv5ZwjAF1iFKLsSltR1iScH5o+J6I36kSfNZbpK6VBZ
e7bJoutcDPkXAgMBAAGjZjBkMBIGA1UdEwEB/wQIMAYBAf8CAQAwDgYDVR0PAQH/
BAQDAgEGMB0GA1UdDgQWBBRIH+gOgUL8aWbMXU6Rg/OZ0pVDxTAfBgNVHSMEGDAW
gBTcuf8BkqKsnJ2Gjcy16yz2Nc99aDANBgkqhkiG9w0BAQsFAAOCAQEAfawJcEiW
rU5AJIudRMoe6yziSCudl93oJx8S5r0XscKPb+iKM0eVGwWVRryAvuMItjPS5UW/
mG18M87hnmBOv9nZMuYFzUQLKVsuB4Zlmv0CaI2Rf5cqzoREmsB/32gAcTrTMq8P
kzK7de1rDOnxp6PwfmGJtjAYUsdaAeZr5a3Pkh5f56hrxplMDRADw5arngkFJDNH
xweirD56X4W7zVxbopdwERz7nz9feGkOOFx0HAP5BfaKv/Q6EGHHRfDExgUllugT
QgIU+CqW0TPlyCnW1xm9I47f3oNd4R3oQThkB++efVD4SDkcW91GAOSMlcVmOUrx
M1XYSs90kuQVIQ==
-----END CERTIFICATE-----
`

const LeafPEM = `-----BEGIN CERTIFICATE-----
MIIDbTCCAlWgAwIBAgIUF/UQEFZDKY8hTdTp76k7YmxHPu0wDQYJKoZIhvcNAQEL
BQAwJTEjMCEGA1UEAwwaVHJhaWwgVGVzdCBJbnRlcm1lZGlhdGUgQ0EwHhcNMjYw
ODA2MDgwNjMxWhcNMjcwODA2MDgwNjMxWjAaMRgwFgYDVQQDDA93d3cuZXhhbXBs
ZS5vcmcwggEiMA0GCSqGSIb3DQEBAQUAA4IBDwAwggEKAoIBAQCKoX7uBqhDxZ8e
S9lUhV0UGSd6VUqCrVHcg83NHeoZRfWTL9IlAiFxUjx0Qnwj/99XPJkZjqhvPR0Y
x8Ug2D0k39vnQdMAygXG9+QIVYPoVz320QoF8ogbBe/QEm285JpRlsCfoe7uMzh+
0YaQP9wEHuRYMP6wcC22+RRo5vFSQYTwTBOYtqJAP4EUYzpTB2vwmrmBIfXyimgh
wy61c3aGyTX/IK6vdae/OCVhvOZhlzb2KI9kmQAy/StNaVl+MHwZUiCO2FBWhWEL
Ygw8MIZ+bnvKcCBLyuXbbmEFAPAsdonP1tchPli9kIH7zCH7Sov4qLpzuog2OSgJ
TFFof1ZtAgMBAAGjgZ8wgZwwDAYDVR0TAQH/BAIwADAOBgNVHQ8BAf8EBAMCBaAw
EwYDVR0lBAwwCgYIKwYBBQUHAwEwJwYDVR0RBCAwHoIPd3d3LmV4YW1wbGUub3Jn
ggtleGFtcGxlLm9yZzAdBgNVHQ4EFgQUinOJwKSToD56J2JCKE6x6Ylh+C0wHwYD
VR0jBBgwFoAUSB/oDoFC/GlmzF1OkYPzmdKVQ8UwDQYJKoZIhvcNAQELBQADggEB
AFUDOM1UiL65vJNfQJFOh4bjcKTqVsv2/oVO2C5Cu5YAM8D9/Pahz6b2NWjyu/6B
/RH0ywWvKi9DnPQy6U7WitdrzEzY3C9C4GwZzajhsYrQUEXuMXMJ6CUFCH4KxxDy
wnXEyY1aL2WQo8W7BoOU+3QOuygGFVztcCaJflo0tNEvuB79eo7PzkgBi1bDnvqM
thm5WymbZzrXzci1yeOxtmj3cY4vdg/IK5tlzDClVjPe3kf0ZVNhfty23hOetNpG
sAQIsgzkHkTNHhF9v2JyZ2gf3Sf9l6R5eAB6yThR3CP3oJh9yNlsAnGfgLkJM2ug
0h1Rg6h3ERO7LCHfkx2KKA8=
-----END CERTIFICATE-----
`

const LeafGoodPEM = `-----BEGIN CERTIFICATE-----
MIIDYjCCAkqgAwIBAgIUF/UQEFZDKY8hTdTp76k7YmxHPu4wDQYJKoZIhvcNAQEL
BQAwJTEjMCEGA1UEAwwaVHJhaWwgVGVzdCBJbnRlcm1lZGlhdGUgQ0EwHhcNMjYw
ODA2MDgwNzM4WhcNMjcwODA2MDgwNzM4WjAbMRkwFwYDVQQDDBBnb29kLmV4YW1w
bGUub3JnMIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAr8IGNxep5PDQ
HVpjGkvXywMtrv4R9ofeMJyzsoP3wjG62w1KSJEgsmxr1DT/vNee1UhPUojdPVyJ
0fI5wOlLmlZV8Z3vDOlub41aGXvgUg6v2hGfN5JkrY1LHg1r9kV1G5LClYmDOIP1
hDfgGlOzpQMg0vfKydZ3eQccHBJ4I/1r2awImNdORPmjyUlbKpRk3gxK2IPtP3ON
rQon0p/ltQeCMKv5Vb0HyVJZOvMtEgColXeepb9qMualmE07v0Fze5D6MCL9DMvM
l7tWyp+vm1qUoEF1faZ+EnKDJWrc9wJ5tZpZ/f57NhI6vMkTQ6yB7SRanQrdyP2R
SZ2bDRMAQwIDAQABo4GTMIGQMAwGA1UdEwEB/wQCMAAwDgYDVR0PAQH/BAQDAgWg
MBMGA1UdJQQMMAoGCCsGAQUFBwMBMBsGA1UdEQQUMBKCEGdvb2QuZXhhbXBsZS5v
cmcwHQYDVR0OBBYEFKIIDEzybb3hqOnU/dTb6e6j9vsDMB8GA1UdIwQYMBaAFEgf
6A6BQvxpZsxdTpGD85nSlUPFMA0GCSqGSIb3DQEBCwUAA4IBAQCkwfRkX26oZ9vt
942DnSMLEXhtb8TYhoEA+MAbwZI0rBDEKJl76U74s61vqpY2Lkb8bXfFXwBhIkOX
Zk4EY/RXGFMFOYOEK38DTkWyvQlWdO2/P77CuBKTKYI+fbb720nz2L654QNneoCs
FhpLXtAzWHuMNrNwA5C+u/RQnsO39GKz/Ac2xK2UtWdtIeQK+W9DypONc/AceX3c
tcqTF5ev3TW9H4llQXIIwNTIYUq/smXgDuokFyO7XAGJtsyUpVKFt72nv54Bnfqt
BZZ80jw1BGcaNKA2LDVxv2H5ZbljOh/YJdUaAb5TGSS4/z0y3U93xnoq7vgOY3J2
4qSxxaIA
-----END CERTIFICATE-----
`

const LeafBadIssuerPEM = `-----BEGIN CERTIFICATE-----
MIIDTTCCAjWgAwIBAgIUZQEMUZGRF8plNyzrXLANA7stpXMwDQYJKoZIhvcNAQEL
BQAwKTEnMCUGA1UEAwweVHJhaWwgVGVzdCBOb24tQ0EgSW50ZXJtZWRpYXRlMB4X
DTI2MDgwNjA4MDczOFoXDTI3MDgwNjA4MDczOFowGjEYMBYGA1UEAwwPYmFkLmV4
YW1wbGUub3JnMIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAqxLjXTcX
M+7ZsSLXxAAn9Soqy/H9OIvFXLE+3WbQ5YeBH1LA4OSNkQRJm/K9IFwRXcPuIQFf
2pKWYpUThGJrOu6w/gmMz7i5+xAbaXGWE2u/uc/mEvmKpUzY58NFlgfOAWelk3ye
qPyZKR+4wkTp9ItTZTzYCE1lSrmcQ7yeGrNHr5g18sMpK1xPD+OHw0Auz066IoLk
caMFKBvgNLgtIIyG+2C02Z9f4d/7wP12RzaQmauVJ0jC/0UcPXpwtRQYUBWVUMbk
BHEJ2WmIcQQgN3jyAhtC9DlRZ/0gA97F143Eb6GgWcquRONJgzxJrQfBjHKR5NHn
bBzxm8kXaaa77QIDAQABo3wwejAMBgNVHRMBAf8EAjAAMA4GA1UdDwEB/wQEAwIH
gDAaBgNVHREEEzARgg9iYWQuZXhhbXBsZS5vcmcwHQYDVR0OBBYEFJXOvnEUXttp
aSWd3alImNOnkQSrMB8GA1UdIwQYMBaAFPnrv97gD83m2sJDiYVEdlkpvEroMA0G
CSqGSIb3DQEBCwUAA4IBAQBJ0tsNkWBvCetHyKl97upYo2Zp9/SNfy+PYTtivaU5
vHZfr7ZBcn9n6d/hVe3IWkcrzyPLw8/pzdEMo6amr68BB4UjmhpsoqbL2InzfAm9
5wvsU0QYRp/c3u/IdItIApY9eYC0j4+ATBZO+Qjmj+3MokJaLgMBREnN84n/pdCk
2RQiYQeGLjRw8efeomSpX65mMAAuz9Lyw1KwYngLHiPeVe6hR2wXbcDkLikJDBJF
O+9gPiXncxSgEoNciyRnHWvlPlIy8kdKbvH+q15oDGfhm2vaMU7uHRXDXJt49xDc
uq062/Y7SboOJ085Is8EAfp88p2y/gOzPQ5vBIAtXSFi
-----END CERTIFICATE-----
`

const NonCAIntermediatePEM = `-----BEGIN CERTIFICATE-----
MIIDNDCCAhygAwIBAgIUAKBSTL/wbWR8DpNDl2QfVU7ZLbcwDQYJKoZIhvcNAQEL
BQAwHTEbMBkGA1UEAwwSVHJhaWwgVGVzdCBSb290IENBMB4XDTI2MDgwNjA4MDcz
OFoXDTMxMDgwNTA4MDczOFowKTEnMCUGA1UEAwweVHJhaWwgVGVzdCBOb24tQ0Eg
SW50ZXJtZWRpYXRlMIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAwNcG
NigtH0FNf+rC+F+UvDp6ErWzouOM4dK+B8tIOuM3OwSMCrVuqt2e2gpoUoRA1hNH
SYMYuePRtBvjkx4egZaBh2CkaaPLDOq5DvTm7BMjNpD4HBV7+TLdgCQjsljIddeP
1kpVF5rkZ7zJFj7UlPnLNTcst+twWMYdAfj4McwdrVT4WhfNR/6CbWRFYeBE8zBO
HqGxM0JNpJvw2ih6MffrEUI+LFdp7Qy7rFNd62WVCTQ8maHB1pnyhexa73TfaMJ3
Ia6b78220+N/lFOPlmGZ7t8Cc9mibU0ApjdN0qxCQl9DDCTIuk+T5DlZuBTE6Vbo
wEUDiRIxHm6JU4GpxwIDAQABo2AwXjAMBgNVHRMBAf8EAjAAMA4GA1UdDwEB/wQE
AwIHgDAdBgNVHQ4EFgQU+eu/3uAPzebawkOJhUR2WSm8SugwHwYDVR0jBBgwFoAU
3Ln/AZKirJydho3Mtess9jXPfWgwDQYJKoZIhvcNAQELBQADggEBAHxY2CvEcV61
yxUwOt0pCxqI6HzN6/KVVoaRtbf6/PHBNrrsJ0r/iny1vAnubgrnQmVy4dIey0fL
bjJte1EgqdSDvWDxGIEDu/oNdSvJRD2SD6XA9ryN6Q1LAdxZ8Sbm+wI0FKoeuKqc
BAcRqy8/Pto8ZXOmBTmgXvh/elNN4wIUrRWYnBuADvqpNrhWS/1RSi48wPlYLVE+
GT4wgUO9owLy0c/1godQP4lhDDpvdQqfDyl4WFG0LmOUICRmPukqXROwC/v25f1m
4syJuSJ0Y/kzBWiBVMsRSWf3yrhnQUq9BFZMm+4qMZlvj2cJwHvGkuwfZCiWVY6X
JZ+h3ZouEI0=
-----END CERTIFICATE-----
`

const UnrelatedRootPEM = `-----BEGIN CERTIFICATE-----
MIIDKTCCAhGgAwIBAgIUIuOZ3m/2eSZGXiooXMwDfbwYeIcwDQYJKoZIhvcNAQEL
BQAwHDEaMBgGA1UEAwwRVW5yZWxhdGVkIFJvb3QgQ0EwHhcNMjYwODA2MDgwNzM4
WhcNMzYwODAzMDgwNzM4WjAcMRowGAYDVQQDDBFVbnJlbGF0ZWQgUm9vdCBDQTCC
ASIwDQYJKoZIhvcNAQEBBQADggEPADCCAQoCggEBAIP3fj3aya5eid6IWKaHa2sD
N2ivKRX8U//G0K1o8VZaVjdFXEwg4L1cyhVfKnqOKskotKdGRIrh6fVyFESD/frg
jaVGvHfqNtQTUUx1ucfRX88nlqkYVa70CEc58heXR3eE9ysUq/KpLnmCkJYw2t2z
HimcMHLqZiRVVLKO/1IEJhMPzWPHfmVPxiBMVPzneJyBy9VSEy5YjfCq2Peiqkxh
0cv/+eHFCjR0zk97qrU7/06aIDG0Wk6/vSOBywrresUm8vSpsl+77/JB5KGXudjq
jzHQUjHESbeAt07NRYTBXKzRhHzJy4G5wyr7+RyHN6h+mRYHqQzG6qB713dCuqsC
AwEAAaNjMGEwHQYDVR0OBBYEFF14JDl+5VkS1H1x0FQfrxFY3k4gMB8GA1UdIwQY
MBaAFF14JDl+5VkS1H1x0FQfrxFY3k4gMA8GA1UdEwEB/wQFMAMBAf8wDgYDVR0P
AQH/BAQDAgEGMA0GCSqGSIb3DQEBCwUAA4IBAQAt+NuWrbir7ErWdQMcqkSuVP45
trwNlwmUd+O6x/d3BzbmiPJpUa2FFrR0IqSWIFGgMjyfwcZSLKKNmNS7+MWjbh6b
jte/lRQiyarocdt4GSr06MXQPj4kFVOsQAeUoPjK37siC4BCbxY2OuJz8dPGKcWF
8lkFgHSsuJj6ob7cTjRkPb0+HOZlPb8HInMzplP+FCg9zUGZgr5Lt4fAyBlM43Up
92m3+aFAuud9Y/ZE5FJGUXrzzBIaK4Si209EhJvSSNVXrkDQrVLeJVjGwLm+P3DJ
veTK6qcz0CTBrogBp/G7Pg3E271dQbNPj349Huq2M3S3s/9+W+4ZTQL3KSFC
-----END CERTIFICATE-----
`

const SelfSignedPEM = `-----BEGIN CERTIFICATE-----
MIIDVTCCAj2gAwIBAgIUGE+AyDUXC20C5vvl6EJr4Fhlk8wwDQYJKoZIhvcNAQEL
BQAwITEfMB0GA1UEAwwWc2VsZnNpZ25lZC5leGFtcGxlLm9yZzAeFw0yNjA4MDYw
ODA3NTdaFw0zNjA4MDMwODA3NTdaMCExHzAdBgNVBAMMFnNlbGZzaWduZWQuZXhh
bXBsZS5vcmcwggEiMA0GCSqGSIb3DQEBAQUAA4IBDwAwggEKAoIBAQDXIGfFjiAo
zHZXLm5RLa4RanZg2l97GKiAHp1iFUUeVkz5cODL/3fdwnvEJvYm2asuMRkg78tY
yhFnL2UW9XwdfPanhBTs4FV3z44SBH7K/bjjc1he9y/lIH0Y1Zd0mZFXyipOs8or
x2R2gznuMHd+KZEbWgyeND8PuVrJM0dMd2dc3FMc74ff0ipjaKGvV2pRx0mglWLv
MQq7WZry8O3mVxRapAHAl0jktyNgFGhatb7eTdGszZi5gPe57qaxYO2Phw1azJSw
8jAnUBiuM/CMOI/BitlbrlYwtpH20nf4i2T8WskjnWKCel1LndHgbOxSzaLNHG13
tTUyB9L1xFxfAgMBAAGjgYQwgYEwHQYDVR0OBBYEFB7g4ZaH2+H48KQEWkMBnW7d
UpJoMB8GA1UdIwQYMBaAFB7g4ZaH2+H48KQEWkMBnW7dUpJoMAwGA1UdEwEB/wQC
MAAwDgYDVR0PAQH/BAQDAgWgMCEGA1UdEQQaMBiCFnNlbGZzaWduZWQuZXhhbXBs
ZS5vcmcwDQYJKoZIhvcNAQELBQADggEBAEae7ldi2MpSUm9uMUqkchu81x/wEGIc
/AnVPef7VSoOIE4u1du31C8FM/SyNVRmgbz6RhT+XtF8v/6VL1BO5H+/cw5ZO66+
TT7cStb5V8UYzjKNOmQGuP4NRil/QNdpPagkLhZdU161XR43IxH7m5U0jHQZZX5B
XhCYzHHGtUDND9GDsE3UByjXCizdsp85o1P9b0c3noh9OAU21Fu5oaDn6nEa26PG
knDWN2HUT0APoTcvSal6vwFl7TxprfcxWZYMbBLshv9xKm1m3bgUkUOlOUnlmyCW
SmVaF2X4Xthz6CkeEnpxUqxRF8ltWL5xOlgIfpPFHdEvWXNbnz0En1M=
-----END CERTIFICATE-----
`

const IntermediateCRLPEM = `-----BEGIN X509 CRL-----
MIIBqDCBkQIBATANBgkqhkiG9w0BAQsFADAlMSMwIQYDVQQDDBpUcmFpbCBUZXN0
IEludGVybWVkaWF0ZSBDQRcNMjYwODA2MDgwNzI1WhcNMjYwOTA1MDgwNzI1WjAn
MCUCFBf1EBBWQymPIU3U6e+pO2JsRz7tFw0yNjA4MDYwODA3MjVaoA8wDTALBgNV
HRQEBAICEAAwDQYJKoZIhvcNAQELBQADggEBAB49CLKC4f/btfPkofLrVeSBR0wL
Cm8YB7Zld6JvuCoUW/rvH2QC5sGiDkdG/CE55W3jatuf4maiZ56JEO3LZSJgvcLC
BZB2DvooU99wHnJeu9YzOGaTh4aJXj84E87DpvtwfBa6w2TrqJJGH1j6A/QsI57P
Wfk2o4ZT/9cuX/vMrwJmUq4hhsjf9G4F5C1ntjMGceg7yw5KfFy9vryUY+2p9DtZ
xzLMFJlgcWhQiVj7N7VSY9ICkeZA6s9XrYmCzQLIkdU3+zwdSikTE+6yFDRY8bxK
Dww9IJj7/rokQ+kF/P4ZjLYU+HWSER1w47PI6FkXHYIa0f1Trm+ENSPDQ6U=
-----END X509 CRL-----
`

