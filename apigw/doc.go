/*
apigw 实现 NCP API Gateway 的请求签名协议，并基于 ncloud 包的调用管道提供一个完整的客户端。

# 签名校验

每个调用者会被分配到一组配对的 access key 和 secret key ， access key 用于标识调用者的身份，
secret key 用于生成签名。发起 HTTP 请求时，签名信息放在三个请求头上：

	x-ncp-apigw-timestamp: 生成签名时的 UNIX 时间戳，单位是毫秒，十进制数字串。
	x-ncp-iam-access-key: 调用者的 access key 。
	x-ncp-apigw-signature-v2: 签名，算法见下文。

头上的时间戳和 access key 必须和参与签名计算的值完全一致。携带 body 的请求额外带有
Content-Type: application/json 头。

# 签名算法

字符集统一使用 UTF-8 。签名使用 HMAC-SHA256 算法，通过 secret key 对待签名串进行哈希计算，
结果使用标准 base64 （含补位）编码。待签名串根据请求的内容生成，格式为：

	{METHOD} {PATH_WITH_QUERY}
	{TIMESTAMP}
	{ACCESS_KEY}

各部分间用换行符（\n）分割，末尾没有换行符，各部分的值为：
 1. METHOD 是 HTTP 请求的 METHOD ，如 GET/POST ，大写。它和 PATH_WITH_QUERY 之间是一个空格。
 2. PATH_WITH_QUERY 是请求的 request-target ，即 path 加上“?”和 query string （如果有）。
    它必须和 HTTP 请求行实际上送的串逐字节一致，任何转义上的偏差都会导致签名被远端拒绝。
    没有 query string 时，不带“?”。
 3. TIMESTAMP 是毫秒级 UNIX 时间戳，需和 x-ncp-apigw-timestamp 头的值一样。
 4. ACCESS_KEY 是调用者的 access key ，需和 x-ncp-iam-access-key 头的值一样。

签名计算是纯函数：相同输入总是得到相同的签名；没有内部错误分支。

# 例子1 - 带 query 的 POST 请求

当前示例及其后的示例中，时间戳均固定为 1662439087000 ，使用的 access key 的值为
my_access_key ， secret key 的值为 my_secret_key 。

待签名的请求为：

	POST /vserver/v2/createServerInstances?serverName=web01&zoneCode=KR-1

待签名串为：

	POST /vserver/v2/createServerInstances?serverName=web01&zoneCode=KR-1
	1662439087000
	my_access_key

通过 my_secret_key 计算 HMAC-SHA256 并做 base64 编码，得到签名：

	568C9qIsca8oK0V++I5zKXVDHS7htvEd4C7l+04cY/4=

最终请求头为：

	POST /vserver/v2/createServerInstances?serverName=web01&zoneCode=KR-1
	Content-Type: application/json
	x-ncp-apigw-timestamp: 1662439087000
	x-ncp-iam-access-key: my_access_key
	x-ncp-apigw-signature-v2: 568C9qIsca8oK0V++I5zKXVDHS7htvEd4C7l+04cY/4=

# 例子2 - 空白请求

	GET /

待签名串为：

	GET /
	1662439087000
	my_access_key

此请求没有参数，故 PATH_WITH_QUERY 部分就是裸路径，没有“?”。得到签名：

	yHP1IU4CTC8SusNh7XkKZiHNvYXi/G4LyJMwU8VkepA=

# query 参数的合并

query 参数可以内嵌在路径里，也可以通过参数表显式给定。两者同时存在时，显式给定的值覆盖
内嵌的同名值，合并结果既用于签名也用于传输，两者不会出现分歧。合并规则见 ncloud.MergeQuery 。
*/
package apigw
