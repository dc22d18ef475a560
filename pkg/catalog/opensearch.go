// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import "github.com/walteh/rewriterc/pkg/text"

// Include is the glob every source file must match
const Include = "**/*.scala"

// managerLayer turns a generated manager class into a companion object providing a ZLayer and a
// trait that exposes the http service. The class body that follows the declaration becomes the
// trait body.
const managerLayer = `object $1Manager {
  lazy val live: ZLayer[ElasticSearchHttpService, Nothing, $1Manager] =
    ZLayer {
      for {
        httpServiceBase <- ZIO.service[ElasticSearchHttpService]
      } yield new $1Manager {
        override def httpService: ElasticSearchHttpService = httpServiceBase
      }
    }

}

trait $1Manager {
  def httpService: ElasticSearchHttpService
`

// Patterns returns the pattern rules, in application order
func Patterns() []text.PatternRule {
	return []text.PatternRule{
		{Name: "single-key-dictionary", Match: `\bSingleKeyDictionary\b`, Replace: "Map"},
		{Name: "ulong", Match: `\bulong\b`, Replace: "Long"},
		{Name: "uint", Match: `\buint\b`, Replace: "Int"},
		{Name: "query-container", Match: `\bQueryContainer\b`, Replace: "Query"},
		{Name: "aggregation-container", Match: `\bAggregationContainer\b`, Replace: "Aggregation"},
		{Name: "task-infos", Match: `\bTaskInfos\b`, Replace: "Chunk[zio.openasearch.tasks.TaskInfo]"},
		{Name: "pretty-last-param", Match: `\bpretty: Boolean\s+\)`, Replace: "pretty: Boolean=false)"},
		{Name: "manager-layer", Match: `class (.*)Manager\(httpService: ElasticSearchHttpService\) {`, Replace: managerLayer},
	}
}

// Literals returns the literal rules, in application order
func Literals() []text.LiteralRule {
	return []text.LiteralRule{
		// doubly quoted defaults
		{Name: "quoted-1m", Find: `""1m""`, Replace: `"1m"`},
		{Name: "quoted-30s", Find: `""30s""`, Replace: `"30s"`},
		{Name: "quoted-20s", Find: `""20s""`, Replace: `"20s"`},
		{Name: "quoted-25s", Find: `""25s""`, Replace: `"25s"`},
		{Name: "quoted-10s", Find: `""10s""`, Replace: `"10s"`},
		{Name: "quoted-0", Find: `""0""`, Replace: `"0"`},
		{Name: "quoted-1s", Find: `""1s""`, Replace: `"1s"`},
		{Name: "quoted-5d", Find: `""5d""`, Replace: `"5d"`},
		{Name: "quoted-5m", Find: `""5m""`, Replace: `"5m"`},
		{Name: "quoted-comma", Find: `"",""`, Replace: `","`},
		{Name: "quoted-started", Find: `""started""`, Replace: `"started"`},

		// moving to chunk
		{Name: "seq-string-nil", Find: "Seq[String] = Nil", Replace: "Chunk[String] = Chunk.empty"},
		{Name: "seq-string-empty", Find: "Seq[String] = Seq.empty", Replace: "Chunk[String] = Chunk.empty"},
		{Name: "list-string-nil", Find: "List[String] = Nil", Replace: "Chunk[String] = Chunk.empty"},
		{Name: "list-string-empty", Find: "List[String] = List.empty", Replace: "Chunk[String] = Chunk.empty"},
		{Name: "list-query-nil", Find: "List[Query] = Nil", Replace: "Chunk[Query] = Chunk.empty"},
		{Name: "list-query-empty", Find: "List[Query] = List.empty", Replace: "Chunk[Query] = Chunk.empty"},

		{Name: "lazy-json-codec", Find: "implicit val jsonCodec", Replace: "implicit lazy val jsonCodec"},
		{Name: "zio-response", Find: "ZioResponse[", Replace: "ZIO[Any, FrameworkException, "},
		{Name: "client-type", Find: "(client: ElasticSearch)", Replace: "(client: ElasticSearchClient)"},

		// union types the generator cannot express
		{Name: "union-string-int", Find: "Option[String] | Option[Int]", Replace: "Option[Json]"},
		{Name: "union-boolean-string", Find: "Option[Boolean] | Option[String]", Replace: "Option[Json]"},
		{Name: "union-int-string", Find: "Option[Int] | Option[String]", Replace: "Option[Json]"},
		{Name: "union-string-long", Find: "Option[String] | Option[Long]", Replace: "Option[Json]"},

		// defaulted query parameters
		{Name: "default-error-trace", Find: "errorTrace: Boolean,", Replace: "errorTrace: Boolean=false,"},
		{Name: "default-filter-path", Find: "filterPath: Chunk[String],", Replace: "filterPath: Chunk[String]=Chunk.empty[String],"},
		{Name: "default-human", Find: "human: Boolean,", Replace: "human: Boolean=false,"},
		{Name: "default-pretty", Find: "pretty: Boolean,", Replace: "pretty: Boolean=false,"},
		{Name: "default-master-timeout", Find: "masterTimeout: String,", Replace: "masterTimeout: Option[String]=None,"},
		{Name: "default-timeout", Find: "timeout: String,", Replace: "timeout: Option[String]=None,"},

		{Name: "hits-metadata", Find: "HitsMetadata[TDocument]", Replace: "HitResults"},
		{Name: "response-item", Find: "ResponseItem[TDocument]", Replace: "ResultDocument"},
		{Name: "default-operator", Find: " defaultOperator.OR", Replace: " DefaultOperator.OR"},
		{Name: "inline-get", Find: "InlineGet[TDocument]", Replace: "TDocument"},
		{Name: "duration-nanos", Find: "DurationValue[UnitNanos]", Replace: "Long"},
		{Name: "ccs-minimize-roundtrips", Find: `ccsMinimizeRoundtrips != "true"`, Replace: "ccsMinimizeRoundtrips != true"},
		{Name: "ccs-minimize-roundtrips-again", Find: `ccsMinimizeRoundtrips != "true"`, Replace: "ccsMinimizeRoundtrips != true"},
		{Name: "duration-seconds", Find: "DurationValue[UnitSeconds]", Replace: "Long"},
		{Name: "duration-float-millis", Find: "DurationValue[UnitFloatMillis]", Replace: "Double"},
		{Name: "from-default", Find: `from: Int = "0",`, Replace: "from: Int = 0,"},
		{Name: "size-default", Find: `size: Int = "100",`, Replace: "size: Int = 100,"},
		{Name: "stringified-epoch", Find: "Stringified[EpochTime[UnitSeconds]]", Replace: "String"},

		// the client becomes an injected http service
		{Name: "client-to-http-service-type", Find: "client: ElasticSearchClient", Replace: "client: ElasticSearchHttpService"},
		{Name: "client-to-http-service-name", Find: "client: ElasticSearchHttpService", Replace: "httpService: ElasticSearchHttpService"},
		{Name: "client-execute", Find: "client.execute", Replace: "httpService.execute"},

		{Name: "version-long", Find: "version: Option[Double] = None", Replace: "version: Option[Long] = None"},
		{Name: "method-put", Find: `def method: String = "PUT"`, Replace: "def method: Method = Method.PUT"},
		{Name: "method-post", Find: `def method: String = "POST"`, Replace: "def method: Method = Method.POST"},
		{Name: "method-get", Find: `def method: String = "GET"`, Replace: "def method: Method = Method.GET"},
		{Name: "method-head", Find: `def method: String = "HEAD"`, Replace: "def method: Method = Method.HEAD"},
		{Name: "method-delete", Find: `def method: String = "DELETE"`, Replace: "def method: Method = Method.DELETE"},

		{Name: "nullable-double", Find: "Double | null | None", Replace: "Option[Double] = None"},
		{Name: "match-keyword", Find: "match: Long,", Replace: "`match`: Long,"},
		{Name: "managed-bool", Find: "managed: Bool() = None", Replace: "managed: Option[Boolean] = None"},
	}
}

// Packages returns the client modules rewritten by default, relative to the base directory
func Packages() []string {
	return []string{
		"openasearch-admin",
		"openasearch-async-search",
		"openasearch-autoscaling",
		"openasearch-cat",
		"openasearch-ccr",
		"openasearch-client-http4s",
		"openasearch-client-sttp",
		"openasearch-cluster",
		"openasearch-core",
		"openasearch-dangling-indices",
		"openasearch-enrich",
		"openasearch-eql",
		"openasearch-features",
		"openasearch-fleet",
		"openasearch-graph",
		"openasearch-ilm",
		"openasearch-indices",
		"openasearch-ingest",
		"openasearch-license",
		"openasearch-logstash",
		"openasearch-migration",
		"openasearch-ml",
		"openasearch-monitoring",
		"openasearch-nodes",
		"openasearch-orm",
		"openasearch-rollup",
		"openasearch-script",
		"openasearch-searchable-snapshots",
		"openasearch-security",
		"openasearch-shutdown",
		"openasearch-slm",
		"openasearch-snapshot",
		"openasearch-sql",
		"openasearch-ssl",
		"openasearch-tasks",
		"openasearch-text-structure",
		"openasearch-transform",
		"openasearch-watcher",
		"openasearch-xpack",
	}
}

// Layouts returns the source directories searched inside every package
func Layouts() []string {
	return []string{
		"src/main/scala",
		"js/src/main/scala",
		"jvm/src/main/scala",
		"shared/src/main/scala",
	}
}

// Catalog compiles the shipped rules
func Catalog(mode text.Mode) (*text.Catalog, error) {
	return text.NewCatalog(mode, Patterns(), Literals())
}
